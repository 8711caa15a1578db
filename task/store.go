package task

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/term"
)

const (
	// TasksFile is the name of the JSONL file containing tasks.
	TasksFile = "tasks.jsonl"

	maxJSONLineBytes = 1024 * 1024
)

// Store provides access to the tasks of one project directory.
type Store struct {
	dir      string
	readOnly bool
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(message string) (bool, error)
}

// StdioPrompter asks on stdout and reads the answer from stdin.
type StdioPrompter struct{}

// Confirm reports whether the user answered y or yes.
func (StdioPrompter) Confirm(message string) (bool, error) {
	fmt.Printf("%s [y/n]: ", message)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Prompter confirms creation of a missing store. Nil means StdioPrompter.
	Prompter Prompter

	// CreateIfMissing creates tasks.jsonl when it is absent. Without it a
	// missing store yields ErrNoTaskStore.
	CreateIfMissing bool

	// PromptToCreate asks before creating. The default prompter only asks
	// when stdin is a terminal.
	PromptToCreate bool

	// ReadOnly never creates anything.
	ReadOnly bool
}

// Open opens the task store in dir.
func Open(dir string, opts OpenOptions) (*Store, error) {
	path := storeFilePath(dir, TasksFile)
	switch _, err := os.Stat(path); {
	case err == nil:
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("stat task store: %w", err)
	case opts.ReadOnly || !opts.CreateIfMissing:
		return nil, ErrNoTaskStore
	default:
		if err := createStore(path, opts); err != nil {
			return nil, err
		}
	}
	return &Store{dir: dir, readOnly: opts.ReadOnly}, nil
}

func createStore(path string, opts OpenOptions) error {
	if opts.PromptToCreate {
		prompter := opts.Prompter
		ask := true
		if prompter == nil {
			prompter = StdioPrompter{}
			ask = term.IsTerminal(int(os.Stdin.Fd()))
		}
		if ask {
			ok, err := prompter.Confirm("No task store found. Create one?")
			if err != nil {
				return fmt.Errorf("prompt: %w", err)
			}
			if !ok {
				return ErrNoTaskStore
			}
		}
	}
	if err := withFileLock(path, func() error { return nil }); err != nil {
		return fmt.Errorf("create task store: %w", err)
	}
	return nil
}

// Dir returns the project directory holding the store.
func (s *Store) Dir() string {
	return s.dir
}

func storeFilePath(dir, filename string) string {
	return filepath.Join(dir, filename)
}

// withFileLock runs fn under an exclusive flock on path, creating the file
// and its directory as needed.
func withFileLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open file for locking: %w", err)
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	return fn()
}

func readJSONL[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return readJSONLFromReader[T](f)
}

func readJSONLFromReader[T any](r io.Reader) ([]T, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxJSONLineBytes)

	var items []T
	for line := 1; scanner.Scan(); line++ {
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("parse line %d: %w", line, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return items, nil
}

// writeJSONL writes items to path through a temp file and a rename.
func writeJSONL[T any](path string, items []T) (err error) {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i, item := range items {
		if err := enc.Encode(item); err != nil {
			f.Close()
			return fmt.Errorf("encode item %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// readTasks reads all tasks from the store.
func (s *Store) readTasks() ([]Task, error) {
	path := storeFilePath(s.dir, TasksFile)
	var items []Task
	err := withFileLock(s.lockPath(), func() error {
		var err error
		items, err = readJSONL[Task](path)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	return items, nil
}

// writeTasks replaces all tasks in the store.
func (s *Store) writeTasks(tasks []Task) error {
	if s.readOnly {
		return ErrReadOnlyStore
	}
	path := storeFilePath(s.dir, TasksFile)
	err := withFileLock(s.lockPath(), func() error {
		return writeJSONL(path, tasks)
	})
	if err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// update runs fn over all tasks while holding the lock, then writes the
// result back unless fn fails.
func (s *Store) update(fn func([]Task) ([]Task, error)) error {
	if s.readOnly {
		return ErrReadOnlyStore
	}
	path := storeFilePath(s.dir, TasksFile)
	return withFileLock(s.lockPath(), func() error {
		tasks, err := readJSONL[Task](path)
		if err != nil {
			return fmt.Errorf("read tasks: %w", err)
		}
		tasks, err = fn(tasks)
		if err != nil {
			return err
		}
		if err := writeJSONL(path, tasks); err != nil {
			return fmt.Errorf("write tasks: %w", err)
		}
		return nil
	})
}

// lockPath names a sibling lock file. Writes replace the data file by
// rename, so a lock on the data file itself would not hold.
func (s *Store) lockPath() string {
	return storeFilePath(s.dir, TasksFile+".lock")
}

// IDIndex returns an index of all task IDs in the store.
func (s *Store) IDIndex() (IDIndex, error) {
	tasks, err := s.readTasks()
	if err != nil {
		return IDIndex{}, err
	}
	return NewIDIndex(tasks), nil
}

func resolveTaskIDsWithTasks(ids []string, tasks []Task) ([]string, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no task IDs provided")
	}

	index := NewIDIndex(tasks)
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		resolvedID, err := index.Resolve(id)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, resolvedID)
	}

	return resolved, nil
}
