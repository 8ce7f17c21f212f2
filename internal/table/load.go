package table

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hmuraoka/shinkoku-navi/internal/logging"
)

//go:embed table.toml
var defaultTableTOML string

// ErrIntegrity is wrapped by load errors caused by the validation pass, so
// callers can distinguish authoring defects from I/O or syntax problems.
var ErrIntegrity = errors.New("table integrity")

// tableFile mirrors the on-disk TOML layout.
type tableFile struct {
	Glossary  map[string]string `toml:"glossary"`
	Tasks     []Task            `toml:"task"`
	Questions []Question        `toml:"question"`
}

// LoadDefault parses and validates the embedded default table. The embedded
// table is covered by tests, so a failure here means a broken build rather
// than user error.
func LoadDefault() (*Table, *ValidationResult, error) {
	return load(defaultTableTOML, "embedded table")
}

// LoadFile parses and validates the table file at the given path.
func LoadFile(path string) (*Table, *ValidationResult, error) {
	var raw tableFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, nil, fmt.Errorf("loading table %s: %w", path, err)
	}
	return build(raw, &meta, path)
}

func load(data, source string) (*Table, *ValidationResult, error) {
	var raw tableFile
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", source, err)
	}
	return build(raw, &meta, source)
}

// build constructs the indexed table and runs the integrity pass. Warnings
// are logged and returned alongside the table; errors fail the load.
func build(raw tableFile, meta *toml.MetaData, source string) (*Table, *ValidationResult, error) {
	t := &Table{
		Questions: raw.Questions,
		Tasks:     raw.Tasks,
		Glossary:  raw.Glossary,
	}
	if t.Glossary == nil {
		t.Glossary = map[string]string{}
	}
	t.buildIndexes()

	vr := Validate(t, meta)
	if vr.HasErrors() {
		return nil, vr, fmt.Errorf("%w: %s: %s", ErrIntegrity, source, summarizeErrors(vr))
	}

	logger := logging.New("table")
	for _, issue := range vr.Warnings() {
		logger.Warn("table warning", "source", source, "field", issue.Field, "message", issue.Message)
	}
	logger.Debug("table loaded", "source", source, "questions", len(t.Questions), "tasks", len(t.Tasks))

	return t, vr, nil
}

// summarizeErrors joins error-severity issues into a single diagnostic line.
func summarizeErrors(vr *ValidationResult) string {
	var parts []string
	for _, issue := range vr.Errors() {
		if issue.Field != "" {
			parts = append(parts, issue.Field+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return strings.Join(parts, "; ")
}
