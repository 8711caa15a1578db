package main

import (
	"fmt"
	"strconv"

	"github.com/amonks/gantt/criticalpath"
	"github.com/amonks/gantt/internal/ui"
	"github.com/amonks/gantt/task"
)

func formatTaskTable(tasks []task.Task, prefixLengths map[string]int, highlight func(string, int) string) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	builder := ui.NewTableBuilder([]string{"ID", "KIND", "STATUS", "START", "END", "DAYS", "PROGRESS", "ASSIGNEE", "NAME"}, len(tasks))

	if prefixLengths == nil {
		prefixLengths = task.NewIDIndex(tasks).PrefixLengths()
	}

	for _, t := range tasks {
		builder.AddRow([]string{
			highlight(t.ID, ui.PrefixLength(prefixLengths, t.ID)),
			string(t.Kind),
			string(t.Status()),
			t.Start,
			t.End,
			strconv.Itoa(criticalpath.Duration(t.Start, t.End)),
			fmt.Sprintf("%d%%", t.Progress),
			dashIfEmpty(t.Assignee),
			ui.TruncateTableCell(t.Name),
		})
	}

	return builder.String()
}

func dashIfEmpty(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
