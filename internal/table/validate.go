package table

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ValidationSeverity indicates whether a validation issue is an error or warning.
type ValidationSeverity string

const (
	// SeverityError indicates a fatal issue; the table is unusable.
	SeverityError ValidationSeverity = "error"
	// SeverityWarning indicates an issue the resolver tolerates at run time
	// (the reference is filtered out), but that a table author should fix.
	SeverityWarning ValidationSeverity = "warning"
)

// ValidationIssue represents a single validation finding.
type ValidationIssue struct {
	Severity ValidationSeverity
	Field    string // dotted path, e.g. "question.q3.option.yes"
	Message  string
}

// ValidationResult holds all validation findings for one table.
type ValidationResult struct {
	Issues []ValidationIssue
}

// HasErrors returns true if any issue has error severity.
func (vr *ValidationResult) HasErrors() bool {
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any issue has warning severity.
func (vr *ValidationResult) HasWarnings() bool {
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Errors returns only error-severity issues.
func (vr *ValidationResult) Errors() []ValidationIssue {
	var errs []ValidationIssue
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}
	return errs
}

// Warnings returns only warning-severity issues.
func (vr *ValidationResult) Warnings() []ValidationIssue {
	var warns []ValidationIssue
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityWarning {
			warns = append(warns, issue)
		}
	}
	return warns
}

// Validate checks the table for structural integrity:
//
//   - at least one question, every question with at least one option
//   - unique question, task, and per-question option ids
//   - every non-terminal option's next pointing at an existing question
//   - valid task categories
//   - at least one terminal option reachable from the start question, and
//     no cycle among reachable questions
//
// Dangling add_tasks references are warnings: the resolver filters them at
// resolution time, so they degrade output rather than break it.
//
// The optional TOML metadata, when non-nil, contributes warnings for
// unknown keys so typos in authored tables do not vanish silently.
func Validate(t *Table, meta *toml.MetaData) *ValidationResult {
	vr := &ValidationResult{}

	if t == nil {
		addError(vr, "", "table is nil")
		return vr
	}

	validateQuestions(vr, t)
	validateTasks(vr, t)
	validateReachability(vr, t)
	validateUnknownKeys(vr, meta)

	return vr
}

// validateQuestions checks per-question structure and cross-question references.
func validateQuestions(vr *ValidationResult, t *Table) {
	if len(t.Questions) == 0 {
		addError(vr, "question", "table contains no questions")
		return
	}

	seen := make(map[string]bool, len(t.Questions))
	for _, q := range t.Questions {
		field := "question." + q.ID

		if q.ID == "" {
			addError(vr, "question", "question with empty id")
			continue
		}
		if seen[q.ID] {
			addError(vr, field, "duplicate question id")
			continue
		}
		seen[q.ID] = true

		if q.Text == "" {
			addError(vr, field, "question has no text")
		}
		if len(q.Options) == 0 {
			addError(vr, field, "question has no options")
		}

		optSeen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			optField := field + ".option." + opt.ID

			if opt.ID == "" {
				addError(vr, field, "option with empty id")
				continue
			}
			if optSeen[opt.ID] {
				addError(vr, optField, "duplicate option id within question")
				continue
			}
			optSeen[opt.ID] = true

			if opt.Label == "" {
				addWarning(vr, optField, "option has no label")
			}
			if !opt.Terminal() {
				if _, ok := t.Question(opt.Next); !ok {
					addError(vr, optField, fmt.Sprintf("next references unknown question %q", opt.Next))
				}
			}
			for _, taskID := range opt.AddTasks {
				if _, ok := t.Task(taskID); !ok {
					addWarning(vr, optField, fmt.Sprintf("add_tasks references unknown task %q", taskID))
				}
			}
		}
	}
}

// validateTasks checks task records for unique ids and valid categories.
func validateTasks(vr *ValidationResult, t *Table) {
	seen := make(map[string]bool, len(t.Tasks))
	for _, task := range t.Tasks {
		field := "task." + task.ID

		if task.ID == "" {
			addError(vr, "task", "task with empty id")
			continue
		}
		if seen[task.ID] {
			addError(vr, field, "duplicate task id")
			continue
		}
		seen[task.ID] = true

		if task.Title == "" {
			addError(vr, field, "task has no title")
		}
		if !task.Category.IsValid() {
			addError(vr, field, fmt.Sprintf("unknown category %q", task.Category))
		}
	}
}

// validateReachability walks the question graph from the start question. It
// reports a cycle among reachable questions as an error (the questionnaire
// could never revisit a question and still terminate) and warns about
// questions no path can reach.
func validateReachability(vr *ValidationResult, t *Table) {
	if len(t.Questions) == 0 {
		return
	}

	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(t.Questions))
	terminalReachable := false

	var walk func(id string)
	walk = func(id string) {
		q, ok := t.Question(id)
		if !ok {
			return // dangling next already reported
		}
		state[id] = inStack
		for _, opt := range q.Options {
			if opt.Terminal() {
				terminalReachable = true
				continue
			}
			switch state[opt.Next] {
			case unvisited:
				walk(opt.Next)
			case inStack:
				addError(vr, "question."+id+".option."+opt.ID,
					fmt.Sprintf("cycle: next returns to already-visited question %q", opt.Next))
			}
		}
		state[id] = done
	}
	walk(t.Start().ID)

	if !terminalReachable {
		addError(vr, "question", "no terminal option is reachable from the start question")
	}

	for _, q := range t.Questions {
		if state[q.ID] == unvisited {
			addWarning(vr, "question."+q.ID, "question is unreachable from the start question")
		}
	}
}

// validateUnknownKeys warns about TOML keys that did not map to any field.
func validateUnknownKeys(vr *ValidationResult, meta *toml.MetaData) {
	if meta == nil {
		return
	}
	for _, key := range meta.Undecoded() {
		addWarning(vr, key.String(), "unknown key in table file")
	}
}

func addError(vr *ValidationResult, field, message string) {
	vr.Issues = append(vr.Issues, ValidationIssue{Severity: SeverityError, Field: field, Message: message})
}

func addWarning(vr *ValidationResult, field, message string) {
	vr.Issues = append(vr.Issues, ValidationIssue{Severity: SeverityWarning, Field: field, Message: message})
}
