// Package ui contains the Bubble Tea program that renders the launcher popup.
// The Model owns only presentation state; mode dispatch, selection and
// execution live in internal/dispatch.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Prompt editing keys (input.go) update the prompt and hand the new text
//     to Dispatcher.HandleText, which runs one mode transition.
//   - Navigation keys (navigation.go) move the dispatcher's selection; enter
//     activates it and quits the program when the controller asks to hide.
//
// Backend interactions:
//   - A backend.Watcher polls the process table; Update waits for its events
//     and stores each snapshot in a state.ProcessStore before asking the
//     dispatcher to refresh the active controller.
//
// Dispatcher events feed the status line: failed actions surface as errors
// and, in verbose mode, completed ones as info messages.
package ui
