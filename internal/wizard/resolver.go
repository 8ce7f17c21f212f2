package wizard

import (
	"sort"

	"github.com/hmuraoka/shinkoku-navi/internal/logging"
	"github.com/hmuraoka/shinkoku-navi/internal/table"
)

// Resolver materializes an answer map into the checklist it implies.
type Resolver struct {
	tbl *table.Table
}

// NewResolver returns a resolver over the given table.
func NewResolver(tbl *table.Table) *Resolver {
	return &Resolver{tbl: tbl}
}

// Resolve collects the union of task ids attached to the options the user
// actually chose and materializes them into task records. The operation is
// pure and total: an empty answer map yields an empty list, an answer for a
// question not in the table contributes nothing, and a task id with no
// record is dropped (counted and logged, not fatal).
//
// The returned list is ordered category-major (preparation, input,
// submission), then by the task table's authoring order, so equal answer
// maps always render identically.
func (r *Resolver) Resolve(answers Answers) []table.Task {
	seen := make(map[string]bool)
	var ids []string

	// Table authoring order, not map iteration order, for determinism.
	for _, q := range r.tbl.Questions {
		optID, answered := answers[q.ID]
		if !answered {
			continue
		}
		opt, ok := q.Option(optID)
		if !ok {
			continue
		}
		for _, taskID := range opt.AddTasks {
			if !seen[taskID] {
				seen[taskID] = true
				ids = append(ids, taskID)
			}
		}
	}

	tasks := make([]table.Task, 0, len(ids))
	dropped := 0
	for _, id := range ids {
		t, ok := r.tbl.Task(id)
		if !ok {
			dropped++
			continue
		}
		tasks = append(tasks, t)
	}
	if dropped > 0 {
		logging.New("resolver").Warn("dropped unresolvable task ids", "count", dropped)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := tasks[i].Category.Rank(), tasks[j].Category.Rank()
		if ri != rj {
			return ri < rj
		}
		return r.tbl.TaskIndex(tasks[i].ID) < r.tbl.TaskIndex(tasks[j].ID)
	})
	return tasks
}

// Group is one category's worth of resolved tasks.
type Group struct {
	Category table.Category
	Tasks    []table.Task
}

// Grouped splits an already-resolved task list into per-category groups in
// display order. Empty categories are omitted.
func Grouped(tasks []table.Task) []Group {
	byCat := make(map[table.Category][]table.Task)
	for _, t := range tasks {
		byCat[t.Category] = append(byCat[t.Category], t)
	}
	var groups []Group
	for _, c := range table.Categories() {
		if len(byCat[c]) > 0 {
			groups = append(groups, Group{Category: c, Tasks: byCat[c]})
		}
	}
	return groups
}
