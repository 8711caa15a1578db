package main

import (
	"fmt"
	"path/filepath"

	"github.com/amonks/gantt/task"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty task store in the project directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	store, err := openTaskStoreWithOptions(task.OpenOptions{CreateIfMissing: true})
	if err != nil {
		return err
	}
	fmt.Printf("Initialized task store in %s\n", filepath.Join(store.Dir(), task.TasksFile))
	return nil
}
