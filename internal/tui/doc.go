// Package tui implements the interactive questionnaire: a Bubble Tea
// program with three screens (welcome, questions, plan) over the wizard
// core. The TUI owns no decision logic; it dispatches key events into
// wizard.Session transitions and renders whatever state comes back.
package tui
