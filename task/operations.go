package task

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// CreateOptions configures a new task.
type CreateOptions struct {
	// Kind is task or milestone. Defaults to KindTask.
	Kind Kind

	// Start is the first day (YYYY-MM-DD). Required.
	Start string

	// End is the last day (YYYY-MM-DD). Defaults to Start.
	End string

	// Progress is the completion percentage. Defaults to 0 when nil.
	Progress *int

	ProjectID string
	PhaseID   string
	Assignee  string
	Team      string
	Notes     string

	// Dependencies is a list of task IDs or unique ID prefixes.
	Dependencies []string
}

// Create creates a new task with the given name.
func (s *Store) Create(name string, opts CreateOptions) (*Task, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if opts.Kind == "" {
		opts.Kind = KindTask
	}
	kind, err := normalizeKindInput(opts.Kind)
	if err != nil {
		return nil, err
	}

	progress := 0
	if opts.Progress != nil {
		progress = *opts.Progress
	}
	if opts.End == "" {
		opts.End = opts.Start
	}

	now := time.Now()
	created := Task{
		ID:        GenerateID(name, now),
		Name:      name,
		Kind:      kind,
		ProjectID: strings.TrimSpace(opts.ProjectID),
		PhaseID:   strings.TrimSpace(opts.PhaseID),
		Assignee:  strings.TrimSpace(opts.Assignee),
		Team:      strings.TrimSpace(opts.Team),
		Progress:  progress,
		Start:     opts.Start,
		End:       opts.End,
		Notes:     opts.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.update(func(tasks []Task) ([]Task, error) {
		if len(opts.Dependencies) > 0 {
			deps, err := resolveTaskIDsWithTasks(opts.Dependencies, tasks)
			if err != nil {
				return nil, err
			}
			created.Dependencies = deps
		}
		if err := ValidateTask(&created); err != nil {
			return nil, err
		}
		return append(tasks, created), nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateOptions configures fields to update on tasks.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Name      *string
	Kind      *Kind
	Start     *string
	End       *string
	Progress  *int
	ProjectID *string
	PhaseID   *string
	Assignee  *string
	Team      *string
	Notes     *string
}

// Update updates one or more tasks with the given options.
// Returns the updated tasks.
func (s *Store) Update(ids []string, opts UpdateOptions) ([]Task, error) {
	if opts.Name != nil {
		if err := ValidateName(*opts.Name); err != nil {
			return nil, err
		}
	}
	if opts.Kind != nil {
		normalized, err := normalizeKindInput(*opts.Kind)
		if err != nil {
			return nil, err
		}
		opts.Kind = &normalized
	}
	if opts.Progress != nil {
		if err := ValidateProgress(*opts.Progress); err != nil {
			return nil, err
		}
	}

	return s.updateTasks(ids, func(t *Task) error {
		if opts.Name != nil {
			t.Name = *opts.Name
		}
		if opts.Kind != nil {
			t.Kind = *opts.Kind
		}
		if opts.Start != nil {
			t.Start = *opts.Start
		}
		if opts.End != nil {
			t.End = *opts.End
		}
		if t.Kind == KindMilestone && opts.End == nil {
			t.End = t.Start
		}
		if opts.Progress != nil {
			t.Progress = *opts.Progress
		}
		if opts.ProjectID != nil {
			t.ProjectID = strings.TrimSpace(*opts.ProjectID)
		}
		if opts.PhaseID != nil {
			t.PhaseID = strings.TrimSpace(*opts.PhaseID)
		}
		if opts.Assignee != nil {
			t.Assignee = strings.TrimSpace(*opts.Assignee)
		}
		if opts.Team != nil {
			t.Team = strings.TrimSpace(*opts.Team)
		}
		if opts.Notes != nil {
			t.Notes = *opts.Notes
		}
		return nil
	})
}

// SetProgress sets the completion percentage of one or more tasks.
func (s *Store) SetProgress(ids []string, progress int) ([]Task, error) {
	return s.Update(ids, UpdateOptions{Progress: &progress})
}

// Shift moves the start and end of one or more tasks by whole days.
// Negative values move tasks earlier.
func (s *Store) Shift(ids []string, days int) ([]Task, error) {
	return s.updateTasks(ids, func(t *Task) error {
		start, err := ParseDate(t.Start)
		if err != nil {
			return err
		}
		end, err := ParseDate(t.End)
		if err != nil {
			return err
		}
		t.Start = start.AddDate(0, 0, days).Format(DateLayout)
		t.End = end.AddDate(0, 0, days).Format(DateLayout)
		return nil
	})
}

// updateTasks applies fn to each task named by ids, validates the result
// and writes everything back in one locked step.
func (s *Store) updateTasks(ids []string, fn func(*Task) error) ([]Task, error) {
	var updated []Task
	err := s.update(func(tasks []Task) ([]Task, error) {
		resolvedIDs, err := resolveTaskIDsWithTasks(ids, tasks)
		if err != nil {
			return nil, err
		}
		idSet := make(map[string]bool, len(resolvedIDs))
		for _, id := range resolvedIDs {
			idSet[id] = true
		}

		now := time.Now()
		for i := range tasks {
			if !idSet[tasks[i].ID] {
				continue
			}
			delete(idSet, tasks[i].ID)

			if err := fn(&tasks[i]); err != nil {
				return nil, fmt.Errorf("update task %s: %w", tasks[i].ID, err)
			}
			tasks[i].UpdatedAt = now

			if err := ValidateTask(&tasks[i]); err != nil {
				return nil, fmt.Errorf("validate task %s: %w", tasks[i].ID, err)
			}
			updated = append(updated, tasks[i])
		}

		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes one or more tasks and drops them from every remaining
// task's dependency list. Returns the removed tasks.
func (s *Store) Delete(ids []string) ([]Task, error) {
	var removed []Task
	err := s.update(func(tasks []Task) ([]Task, error) {
		resolvedIDs, err := resolveTaskIDsWithTasks(ids, tasks)
		if err != nil {
			return nil, err
		}
		idSet := make(map[string]bool, len(resolvedIDs))
		for _, id := range resolvedIDs {
			idSet[id] = true
		}

		now := time.Now()
		kept := tasks[:0]
		for _, t := range tasks {
			if idSet[t.ID] {
				removed = append(removed, t)
				continue
			}
			pruned := t.Dependencies[:0:0]
			for _, dep := range t.Dependencies {
				if !idSet[dep] {
					pruned = append(pruned, dep)
				}
			}
			if len(pruned) != len(t.Dependencies) {
				t.Dependencies = pruned
				t.UpdatedAt = now
			}
			kept = append(kept, t)
		}
		return kept, nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// Import replaces every task in the store. Tasks without an ID get one,
// and missing kinds default to KindTask. Dependencies must refer to tasks
// in the imported set.
func (s *Store) Import(tasks []Task) ([]Task, error) {
	now := time.Now()
	imported := make([]Task, len(tasks))
	known := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if t.ID == "" {
			t.ID = GenerateID(fmt.Sprintf("%s#%d", t.Name, i), now)
		}
		if t.Kind == "" {
			t.Kind = KindTask
		}
		if t.End == "" {
			t.End = t.Start
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		t.UpdatedAt = now
		if known[t.ID] {
			return nil, fmt.Errorf("import task %s: duplicate id", t.ID)
		}
		known[t.ID] = true
		imported[i] = t
	}

	for i := range imported {
		if err := ValidateTask(&imported[i]); err != nil {
			return nil, fmt.Errorf("import task %s: %w", imported[i].ID, err)
		}
		for _, dep := range imported[i].Dependencies {
			if !known[dep] {
				return nil, fmt.Errorf("import task %s: %w: %s", imported[i].ID, ErrTaskNotFound, dep)
			}
		}
	}

	if err := s.writeTasks(imported); err != nil {
		return nil, err
	}
	return imported, nil
}

// Show returns the full details of one or more tasks.
func (s *Store) Show(ids []string) ([]Task, error) {
	tasks, err := s.readTasks()
	if err != nil {
		return nil, err
	}

	resolvedIDs, err := resolveTaskIDsWithTasks(ids, tasks)
	if err != nil {
		return nil, err
	}

	taskByID := taskMapByID(tasks)

	var result []Task
	seen := make(map[string]bool)
	for _, id := range resolvedIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, *taskByID[id])
	}

	return result, nil
}

// ListFilter configures which tasks to return. String filters match
// case-insensitively; empty strings match everything.
type ListFilter struct {
	// Status filters by derived status.
	Status *Status

	// Kind filters by exact kind match.
	Kind *Kind

	Assignee  string
	Team      string
	ProjectID string
	PhaseID   string

	// IDs filters to specific IDs or ID prefixes.
	IDs []string

	// NameSubstring filters to tasks with this substring in the name.
	NameSubstring string
}

// List returns tasks matching the filter, ordered by start date.
func (s *Store) List(filter ListFilter) ([]Task, error) {
	tasks, _, err := s.ListWithIndex(filter)
	return tasks, err
}

// ListWithIndex is List plus an index over every task in the store, for
// highlighting unique ID prefixes.
func (s *Store) ListWithIndex(filter ListFilter) ([]Task, IDIndex, error) {
	if filter.Status != nil {
		normalized, err := normalizeStatusInput(*filter.Status)
		if err != nil {
			return nil, IDIndex{}, err
		}
		filter.Status = &normalized
	}
	if filter.Kind != nil {
		normalized, err := normalizeKindInput(*filter.Kind)
		if err != nil {
			return nil, IDIndex{}, err
		}
		filter.Kind = &normalized
	}

	tasks, err := s.readTasks()
	if err != nil {
		return nil, IDIndex{}, err
	}

	var idSet map[string]bool
	if len(filter.IDs) > 0 {
		resolvedIDs, err := resolveTaskIDsWithTasks(filter.IDs, tasks)
		if err != nil {
			return nil, IDIndex{}, err
		}
		idSet = make(map[string]bool, len(resolvedIDs))
		for _, id := range resolvedIDs {
			idSet[id] = true
		}
	}

	nameQuery := strings.ToLower(filter.NameSubstring)

	var result []Task
	for _, t := range tasks {
		if filter.Status != nil && t.Status() != *filter.Status {
			continue
		}
		if filter.Kind != nil && t.Kind != *filter.Kind {
			continue
		}
		if !matchesFold(filter.Assignee, t.Assignee) ||
			!matchesFold(filter.Team, t.Team) ||
			!matchesFold(filter.ProjectID, t.ProjectID) ||
			!matchesFold(filter.PhaseID, t.PhaseID) {
			continue
		}
		if idSet != nil && !idSet[t.ID] {
			continue
		}
		if nameQuery != "" && !strings.Contains(strings.ToLower(t.Name), nameQuery) {
			continue
		}
		result = append(result, t)
	}

	SortByStart(result)
	return result, NewIDIndex(tasks), nil
}

// All returns every task in the store in file order.
func (s *Store) All() ([]Task, error) {
	return s.readTasks()
}

// SortByStart orders tasks by start date, then end date, keeping file order
// for ties.
func SortByStart(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Start != tasks[j].Start {
			return tasks[i].Start < tasks[j].Start
		}
		return tasks[i].End < tasks[j].End
	})
}

func matchesFold(want, value string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(want, value)
}

func taskMapByID(tasks []Task) map[string]*Task {
	taskMap := make(map[string]*Task, len(tasks))
	for i := range tasks {
		taskMap[tasks[i].ID] = &tasks[i]
	}
	return taskMap
}

// DepAdd makes taskID depend on dependsOnID. Cycles are allowed here;
// CriticalPath reports them.
func (s *Store) DepAdd(taskID, dependsOnID string) (*Task, error) {
	return s.editDependencies(taskID, func(t *Task, tasks []Task) error {
		resolved, err := resolveTaskIDsWithTasks([]string{dependsOnID}, tasks)
		if err != nil {
			return err
		}
		dep := resolved[0]
		if dep == t.ID {
			return ErrSelfDependency
		}
		if t.DependsOn(dep) {
			return ErrDuplicateDependency
		}
		t.Dependencies = append(t.Dependencies, dep)
		return nil
	})
}

// DepRemove removes the dependency of taskID on dependsOnID.
func (s *Store) DepRemove(taskID, dependsOnID string) (*Task, error) {
	return s.editDependencies(taskID, func(t *Task, tasks []Task) error {
		dep := dependsOnID
		if resolved, err := resolveTaskIDsWithTasks([]string{dependsOnID}, tasks); err == nil {
			dep = resolved[0]
		}
		kept := t.Dependencies[:0:0]
		for _, existing := range t.Dependencies {
			if existing != dep {
				kept = append(kept, existing)
			}
		}
		if len(kept) == len(t.Dependencies) {
			return fmt.Errorf("%w: %s -> %s", ErrDependencyNotFound, t.ID, dependsOnID)
		}
		t.Dependencies = kept
		return nil
	})
}

// DepSet replaces the dependencies of taskID.
func (s *Store) DepSet(taskID string, dependsOnIDs []string) (*Task, error) {
	return s.editDependencies(taskID, func(t *Task, tasks []Task) error {
		if len(dependsOnIDs) == 0 {
			t.Dependencies = nil
			return nil
		}
		resolved, err := resolveTaskIDsWithTasks(dependsOnIDs, tasks)
		if err != nil {
			return err
		}
		t.Dependencies = resolved
		return nil
	})
}

func (s *Store) editDependencies(taskID string, fn func(*Task, []Task) error) (*Task, error) {
	var edited Task
	err := s.update(func(tasks []Task) ([]Task, error) {
		resolved, err := resolveTaskIDsWithTasks([]string{taskID}, tasks)
		if err != nil {
			return nil, err
		}
		target := taskMapByID(tasks)[resolved[0]]
		if err := fn(target, tasks); err != nil {
			return nil, err
		}
		target.UpdatedAt = time.Now()
		if err := ValidateTask(target); err != nil {
			return nil, fmt.Errorf("validate task %s: %w", target.ID, err)
		}
		edited = *target
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return &edited, nil
}

// DepTree returns the dependency tree for a task.
func (s *Store) DepTree(id string) (*DepTreeNode, error) {
	tasks, err := s.readTasks()
	if err != nil {
		return nil, err
	}

	resolved, err := resolveTaskIDsWithTasks([]string{id}, tasks)
	if err != nil {
		return nil, err
	}

	taskMap := taskMapByID(tasks)
	root, ok := taskMap[resolved[0]]
	if !ok {
		return nil, ErrTaskNotFound
	}

	path := make(map[string]bool)
	return buildDepTree(root, taskMap, path), nil
}

func buildDepTree(t *Task, taskMap map[string]*Task, path map[string]bool) *DepTreeNode {
	if path[t.ID] {
		// Cycle: stop here.
		return &DepTreeNode{Task: t}
	}
	path[t.ID] = true
	defer delete(path, t.ID)

	node := &DepTreeNode{Task: t}
	for _, dep := range t.Dependencies {
		child, ok := taskMap[dep]
		if !ok {
			continue
		}
		node.Children = append(node.Children, buildDepTree(child, taskMap, path))
	}

	return node
}
