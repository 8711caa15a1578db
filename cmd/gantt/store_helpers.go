package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amonks/gantt/internal/config"
	"github.com/amonks/gantt/internal/ui"
	"github.com/amonks/gantt/task"
	"github.com/spf13/cobra"
)

func openTaskStoreWithOptions(opts task.OpenOptions) (*task.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openTaskStoreWithConfig(cfg, opts)
}

func openTaskStoreWithConfig(cfg *config.Config, opts task.OpenOptions) (*task.Store, error) {
	dir, err := resolveStoreDir(cfg)
	if err != nil {
		return nil, err
	}
	return task.Open(dir, opts)
}

func openTaskStore() (*task.Store, error) {
	return openTaskStoreWithOptions(task.OpenOptions{
		CreateIfMissing: true,
		PromptToCreate:  true,
	})
}

func openTaskStoreReadOnly() (*task.Store, error) {
	return openTaskStoreWithOptions(task.OpenOptions{ReadOnly: true})
}

// taskHighlighterForStore returns a function that highlights the unique
// prefix of a task ID.
func taskHighlighterForStore(store *task.Store) (func(string) string, error) {
	index, err := store.IDIndex()
	if err != nil {
		return nil, err
	}
	return logHighlighter(index.PrefixLengths(), ui.HighlightID), nil
}

func logHighlighter(prefixLengths map[string]int, highlight func(string, int) string) func(string) string {
	if prefixLengths == nil {
		prefixLengths = map[string]int{}
	}
	return func(id string) string {
		if id == "" {
			return id
		}
		return highlight(id, ui.PrefixLength(prefixLengths, id))
	}
}

func printTaskActionResults(store *task.Store, verb string, tasks []task.Task) error {
	highlight, err := taskHighlighterForStore(store)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		fmt.Printf("%s task %s: %s\n", verb, highlight(t.ID), t.Name)
	}
	return nil
}

func encodeJSONToStdout(value any) error {
	return encodeJSON(os.Stdout, value)
}

func encodeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// parseIDList splits a comma-separated list, dropping blanks.
func parseIDList(value string) []string {
	var ids []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

// openTaskStoreReadOnlyOrEmpty opens the store for reading. When no store
// exists it prints an empty result instead and reports handled.
func openTaskStoreReadOnlyOrEmpty(jsonOutput bool) (*task.Store, bool, error) {
	store, err := openTaskStoreReadOnly()
	if err == nil {
		return store, false, nil
	}
	if !errors.Is(err, task.ErrNoTaskStore) {
		return nil, false, err
	}
	if jsonOutput {
		return nil, true, encodeJSONToStdout([]task.Task{})
	}
	fmt.Print(formatTaskTable(nil, nil, ui.HighlightID))
	return nil, true, nil
}

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}
