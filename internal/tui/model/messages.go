package model

import "gitrack/pkg/logging"

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the status message if it is still the one
// identified by Seq.
type ClearStatusBarMsg struct {
	Seq int
}
