// Package cli wires the cobra command tree: the root command launches the
// interactive questionnaire TUI, `plan` runs the form-based flow for plain
// terminals and scripting, `table` inspects the decision table, and
// `config`/`version` cover the usual housekeeping.
package cli
