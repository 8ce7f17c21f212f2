// Package wizard implements the questionnaire core: a small state machine
// that walks the decision table one question at a time, and a resolver that
// turns the recorded answers into the final checklist.
//
// Session is a value type with pure transitions: Select, Back, and Restart
// return a new Session instead of mutating the receiver. This keeps the
// core free of any UI concern; the TUI and the form-based plan command both
// just dispatch user events into these transitions.
package wizard
