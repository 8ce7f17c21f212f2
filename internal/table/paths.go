package table

import "fmt"

// Choice is one step of a complete path through the table: the question
// visited and the option chosen on it.
type Choice struct {
	QuestionID string
	OptionID   string
}

// Path is a complete sequence of choices from the start question to a
// terminal option.
type Path []Choice

// Paths enumerates every start-to-terminal path through the table in
// depth-first, option-authoring order. The shipped table is a linear chain
// of yes/no questions, so it yields 2^11 paths; branching tables yield one
// path per distinct route.
//
// A cycle among reachable questions makes enumeration impossible and
// returns an error. Validate reports the same defect at load time, so this
// only triggers for hand-built tables that skipped validation.
func (t *Table) Paths() ([]Path, error) {
	if len(t.Questions) == 0 {
		return nil, nil
	}

	var paths []Path
	onPath := make(map[string]bool, len(t.Questions))

	var walk func(id string, prefix Path) error
	walk = func(id string, prefix Path) error {
		q, ok := t.Question(id)
		if !ok {
			return fmt.Errorf("question %q not found", id)
		}
		if onPath[id] {
			return fmt.Errorf("cycle through question %q", id)
		}
		onPath[id] = true
		defer func() { onPath[id] = false }()

		for _, opt := range q.Options {
			step := append(append(Path{}, prefix...), Choice{QuestionID: id, OptionID: opt.ID})
			if opt.Terminal() {
				paths = append(paths, step)
				continue
			}
			if err := walk(opt.Next, step); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(t.Start().ID, nil); err != nil {
		return nil, err
	}
	return paths, nil
}
