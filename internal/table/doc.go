// Package table defines the static decision table driving the questionnaire:
// the questions with their options, the task records the options point at,
// and the glossary used for term annotations.
//
// The table is authored in TOML. A default table covering the common
// employee filing cases ships embedded in the binary; an alternative table
// file can be supplied via configuration. After decoding, the table goes
// through an eager integrity pass (see validate.go) so authoring mistakes
// surface at load time instead of as silently missing questions or tasks.
package table
