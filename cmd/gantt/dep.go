package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var depCmd = &cobra.Command{
	Use:   "dep",
	Short: "Manage task dependencies",
}

var depAddCmd = &cobra.Command{
	Use:   "add <task> <depends-on>",
	Short: "Make a task depend on another",
	Args:  cobra.ExactArgs(2),
	RunE:  runDepAdd,
}

var depRemoveCmd = &cobra.Command{
	Use:   "remove <task> <depends-on>",
	Short: "Remove a dependency",
	Args:  cobra.ExactArgs(2),
	RunE:  runDepRemove,
}

var depSetCmd = &cobra.Command{
	Use:   "set <task> [depends-on...]",
	Short: "Replace the dependencies of a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDepSet,
}

var depTreeCmd = &cobra.Command{
	Use:   "tree <id>",
	Short: "Show the tasks a task transitively depends on",
	Args:  cobra.ExactArgs(1),
	RunE:  runDepTree,
}

func init() {
	rootCmd.AddCommand(depCmd)
	depCmd.AddCommand(depAddCmd, depRemoveCmd, depSetCmd, depTreeCmd)
}

func runDepAdd(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	updated, err := store.DepAdd(args[0], args[1])
	if err != nil {
		return err
	}

	highlight, err := taskHighlighterForStore(store)
	if err != nil {
		return err
	}
	fmt.Printf("Added dependency: %s depends on %s\n", highlight(updated.ID), highlight(updated.Dependencies[len(updated.Dependencies)-1]))
	return nil
}

func runDepRemove(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	updated, err := store.DepRemove(args[0], args[1])
	if err != nil {
		return err
	}

	highlight, err := taskHighlighterForStore(store)
	if err != nil {
		return err
	}
	fmt.Printf("Removed dependency from %s\n", highlight(updated.ID))
	return nil
}

func runDepSet(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	updated, err := store.DepSet(args[0], args[1:])
	if err != nil {
		return err
	}

	highlight, err := taskHighlighterForStore(store)
	if err != nil {
		return err
	}
	fmt.Printf("%s now depends on %d task(s)\n", highlight(updated.ID), len(updated.Dependencies))
	return nil
}

func runDepTree(cmd *cobra.Command, args []string) error {
	store, err := openTaskStoreReadOnly()
	if err != nil {
		return err
	}

	tree, err := store.DepTree(args[0])
	if err != nil {
		return err
	}

	highlight, err := taskHighlighterForStore(store)
	if err != nil {
		return err
	}
	printDepTree(os.Stdout, tree, "", true, highlight)
	return nil
}
