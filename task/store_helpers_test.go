package task

import "testing"

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(t.TempDir(), OpenOptions{CreateIfMissing: true})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return store
}

func mustCreate(t *testing.T, store *Store, name string, opts CreateOptions) *Task {
	t.Helper()

	if opts.Start == "" {
		opts.Start = "2024-01-01"
	}
	created, err := store.Create(name, opts)
	if err != nil {
		t.Fatalf("failed to create %q: %v", name, err)
	}
	return created
}

func (s *Store) getTaskByID(id string) (*Task, error) {
	tasks, err := s.readTasks()
	if err != nil {
		return nil, err
	}

	resolved, err := resolveTaskIDsWithTasks([]string{id}, tasks)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID == resolved[0] {
			return &tasks[i], nil
		}
	}

	return nil, ErrTaskNotFound
}

// mockPrompter implements Prompter for testing.
type mockPrompter struct {
	response bool
	err      error
	called   bool
}

func (m *mockPrompter) Confirm(message string) (bool, error) {
	m.called = true
	return m.response, m.err
}
