// Package terminal hosts a widget tree in a bubbletea program.
//
// The model mounts the root widget, renders it with render.Text and binds
// every button with a single-character key to that character. Pressing the
// key taps the button; the resulting state updates are flushed before the
// next view, so each key press shows its effect immediately.
package terminal
