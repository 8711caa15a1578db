package main

import (
	"fmt"
	"io"

	"github.com/amonks/gantt/task"
)

// printDepTree prints a dependency tree with box-drawing connectors.
func printDepTree(w io.Writer, node *task.DepTreeNode, prefix string, isLast bool, highlight func(string) string) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}
	if prefix == "" {
		connector = ""
	}

	fmt.Fprintf(w, "%s%s%s %s (%s)\n",
		prefix, connector, statusIcon(node.Task.Status()), node.Task.Name, highlight(node.Task.ID))

	childPrefix := prefix
	if prefix != "" {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	} else {
		childPrefix = " "
	}

	for i, child := range node.Children {
		printDepTree(w, child, childPrefix, i == len(node.Children)-1, highlight)
	}
}

// statusIcon returns an icon for the status.
func statusIcon(s task.Status) string {
	switch s {
	case task.StatusPending:
		return "[ ]"
	case task.StatusInProgress:
		return "[~]"
	case task.StatusCompleted:
		return "[x]"
	default:
		return "[?]"
	}
}
