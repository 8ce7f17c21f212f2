package table

// Category classifies a task for checklist grouping. Categories render in a
// fixed order: preparation, then input, then submission.
type Category string

const (
	// CategoryPreparation covers document gathering and groundwork.
	CategoryPreparation Category = "preparation"

	// CategoryInput covers filling in the return itself.
	CategoryInput Category = "input"

	// CategorySubmission covers filing and payment.
	CategorySubmission Category = "submission"
)

// categoryRank orders categories for display. Unknown categories sort last.
var categoryRank = map[Category]int{
	CategoryPreparation: 0,
	CategoryInput:       1,
	CategorySubmission:  2,
}

// categoryLabels maps each category to its Japanese display label.
var categoryLabels = map[Category]string{
	CategoryPreparation: "準備編",
	CategoryInput:       "入力編",
	CategorySubmission:  "提出編",
}

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{CategoryPreparation, CategoryInput, CategorySubmission}
}

// IsValid reports whether c is a recognized category value.
func (c Category) IsValid() bool {
	_, ok := categoryRank[c]
	return ok
}

// Rank returns the display position of the category. Unknown categories
// return a rank after every known one.
func (c Category) Rank() int {
	if r, ok := categoryRank[c]; ok {
		return r
	}
	return len(categoryRank)
}

// Label returns the Japanese display label for the category, or the raw
// value when the category is unknown.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Task is a single actionable checklist item.
type Task struct {
	ID             string   `toml:"id"`
	Title          string   `toml:"title"`
	Category       Category `toml:"category"`
	Description    string   `toml:"description"`
	ReferenceURL   string   `toml:"reference_url"`
	ReferenceLabel string   `toml:"reference_label"`
}

// Option is one selectable answer on a question. An empty Next marks a
// terminal option: choosing it ends the questionnaire.
type Option struct {
	ID       string   `toml:"id"`
	Label    string   `toml:"label"`
	Next     string   `toml:"next"`
	AddTasks []string `toml:"add_tasks"`
}

// Terminal reports whether selecting this option ends the questionnaire.
func (o Option) Terminal() bool {
	return o.Next == ""
}

// Question is a single node in the decision table. Each question exclusively
// owns its option list.
type Question struct {
	ID             string   `toml:"id"`
	Text           string   `toml:"text"`
	Guide          string   `toml:"guide"`
	ReferenceURL   string   `toml:"reference_url"`
	ReferenceLabel string   `toml:"reference_label"`
	Options        []Option `toml:"option"`
}

// Option returns the option with the given id, if present.
func (q Question) Option(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Table is the fully loaded, validated decision table. It is immutable
// after Load; all lookups are by id against indexes built once.
type Table struct {
	Questions []Question
	Tasks     []Task
	Glossary  map[string]string

	questionIndex map[string]int
	taskIndex     map[string]int
}

// Question returns the question with the given id, if present.
func (t *Table) Question(id string) (Question, bool) {
	i, ok := t.questionIndex[id]
	if !ok {
		return Question{}, false
	}
	return t.Questions[i], true
}

// QuestionIndex returns the authoring-order position of the question with
// the given id, or -1 when the id is unknown.
func (t *Table) QuestionIndex(id string) int {
	i, ok := t.questionIndex[id]
	if !ok {
		return -1
	}
	return i
}

// Task returns the task with the given id, if present.
func (t *Table) Task(id string) (Task, bool) {
	i, ok := t.taskIndex[id]
	if !ok {
		return Task{}, false
	}
	return t.Tasks[i], true
}

// TaskIndex returns the authoring-order position of the task with the given
// id, or -1 when the id is unknown.
func (t *Table) TaskIndex(id string) int {
	i, ok := t.taskIndex[id]
	if !ok {
		return -1
	}
	return i
}

// Start returns the first question in authoring order. The loader rejects
// tables with no questions, so Start is total on any loaded table.
func (t *Table) Start() Question {
	return t.Questions[0]
}

// Len returns the number of questions in the table.
func (t *Table) Len() int {
	return len(t.Questions)
}

// buildIndexes populates the id lookup maps. Duplicate ids are reported by
// the validation pass; here the first occurrence wins.
func (t *Table) buildIndexes() {
	t.questionIndex = make(map[string]int, len(t.Questions))
	for i, q := range t.Questions {
		if _, exists := t.questionIndex[q.ID]; !exists {
			t.questionIndex[q.ID] = i
		}
	}
	t.taskIndex = make(map[string]int, len(t.Tasks))
	for i, task := range t.Tasks {
		if _, exists := t.taskIndex[task.ID]; !exists {
			t.taskIndex[task.ID] = i
		}
	}
}
