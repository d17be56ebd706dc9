// Package tui is the terminal shell of gitrack.
//
// The shell owns no navigation state. The coordinator tree decides what is on
// screen through a nav.Navigator; the shell renders the active context, routes
// input to it and mounts screens the coordinators put up.
//
// # Architecture
//
// The shell follows a Model-View-Controller split:
//
//   - Model (internal/tui/model/): window size, overlays, the activity log
//     and the coordinator root.
//   - View (internal/tui/view/): header, tab bar, the active screen and the
//     status bar, plus the help and log overlays.
//   - Controller (internal/tui/controller/): key handling, routing of data
//     results and the Bubble Tea program.
//
// # Keys
//
//   - tab / shift+tab: switch navigation context
//   - esc: go back one screen; finishes the leaf that owned it
//   - ?: toggle help
//   - L: toggle the activity log
//   - q / ctrl+c: quit
//
// Screens that take text input (the token field, list filtering) receive
// every key except ctrl+c while they are capturing.
//
// # Data results
//
// Screens load data through commands that resolve to nav.LoadedMsg. The
// controller delivers a result only while its owner is alive and its screen
// is still mounted; anything else is dropped.
package tui
