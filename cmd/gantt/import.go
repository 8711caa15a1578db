package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amonks/gantt/task"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the plan with tasks from a JSON or YAML file",
	Long: `Replace the plan with tasks from a JSON or YAML file.

The file holds a list of tasks using the same field names as
"gantt task list --json". Files ending in .yaml or .yml are read as
YAML; everything else is read as JSON. Use "-" to read JSON from stdin.
Tasks without an id get a generated one. Dependencies must name tasks
in the same file.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importFormat string

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format (json, yaml; default from file extension)")
}

func runImport(cmd *cobra.Command, args []string) error {
	format, err := importFormatFor(args[0], importFormat)
	if err != nil {
		return err
	}

	var data []byte
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	tasks, err := decodeImport(data, format)
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	imported, err := store.Import(tasks)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d tasks\n", len(imported))
	return nil
}

func importFormatFor(path, explicit string) (string, error) {
	switch explicit {
	case "json", "yaml":
		return explicit, nil
	case "":
	default:
		return "", fmt.Errorf("invalid format %q (want json or yaml)", explicit)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "json", nil
	}
}

func decodeImport(data []byte, format string) ([]task.Task, error) {
	var tasks []task.Task
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&tasks); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	return tasks, nil
}
