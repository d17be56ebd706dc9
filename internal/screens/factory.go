// Package screens holds the concrete bubbletea screens of the app and the
// factory the coordinators build them through. Screens know nothing about
// coordinators; they report user intent through nav.Events and load data
// through a github.Service.
package screens

import (
	"errors"

	"gitrack/internal/github"
	"gitrack/internal/nav"
)

// Session is the part of the session store screens write to.
type Session interface {
	Login() string
	SetCredential(token, login string) error
	SelectTarget(repo string) error
}

var errNoClipboard = errors.New("clipboard is not available")

// Factory builds screens with their dependencies injected.
type Factory struct {
	Data      github.Service
	Session   Session
	Clipboard func(string) error
}

var _ nav.Factory = (*Factory)(nil)

// MakeScreen implements nav.Factory. It fails with a *nav.ConstructionError
// when a dependency or parameter the screen needs is missing.
func (f *Factory) MakeScreen(kind nav.Kind, params nav.Params) (nav.Screen, error) {
	if f.Data == nil {
		return nil, &nav.ConstructionError{Kind: kind, Reason: "no data service"}
	}
	if needsSession(kind) && f.Session == nil {
		return nil, &nav.ConstructionError{Kind: kind, Reason: "no session store"}
	}
	if needsRepo(kind) {
		if _, _, err := github.SplitRepo(params.Repo); err != nil {
			return nil, &nav.ConstructionError{Kind: kind, Reason: "no repository selected", Err: err}
		}
	}

	switch kind {
	case nav.KindLogin:
		return newLogin(params, f.Data, f.Session), nil
	case nav.KindRepoPicker:
		return newRepoPicker(params, f.Data, f.Session), nil
	case nav.KindIssueList:
		return newIssueList(params, f.Data), nil
	case nav.KindMilestoneList:
		return newMilestoneList(params, f.Data), nil
	case nav.KindProfile:
		return newProfile(params, f.Data, f.Session), nil
	case nav.KindSettings:
		return newSettings(params, f.Data, f.Session, f.clipboard()), nil
	case nav.KindIssueDetail:
		if params.Number <= 0 {
			return nil, &nav.ConstructionError{Kind: kind, Reason: "no issue number"}
		}
		return newIssueDetail(params, f.Data, f.clipboard()), nil
	case nav.KindMilestoneDetail:
		if params.Milestone <= 0 {
			return nil, &nav.ConstructionError{Kind: kind, Reason: "no milestone number"}
		}
		return newMilestoneDetail(params, f.Data), nil
	case nav.KindUserProfile:
		if params.Login == "" {
			return nil, &nav.ConstructionError{Kind: kind, Reason: "no login"}
		}
		return newUserProfile(params, f.Data), nil
	default:
		return nil, &nav.ConstructionError{Kind: kind, Reason: "unknown screen kind"}
	}
}

func (f *Factory) clipboard() func(string) error {
	if f.Clipboard != nil {
		return f.Clipboard
	}
	return func(string) error { return errNoClipboard }
}

func needsSession(kind nav.Kind) bool {
	switch kind {
	case nav.KindLogin, nav.KindRepoPicker, nav.KindProfile, nav.KindSettings:
		return true
	}
	return false
}

func needsRepo(kind nav.Kind) bool {
	switch kind {
	case nav.KindIssueList, nav.KindMilestoneList, nav.KindSettings,
		nav.KindIssueDetail, nav.KindMilestoneDetail:
		return true
	}
	return false
}
