package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/gantt/criticalpath"
	"github.com/amonks/gantt/internal/markdown"
	"github.com/amonks/gantt/internal/ui"
	"github.com/amonks/gantt/task"
)

const taskDetailLineWidth = 80

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task, highlight func(string) string, now time.Time) {
	fmt.Print(formatTaskDetail(t, highlight, now))
}

func formatTaskDetail(t task.Task, highlight func(string) string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:       %s\n", highlight(t.ID))
	fmt.Fprintf(&b, "Name:     %s\n", t.Name)
	fmt.Fprintf(&b, "Kind:     %s\n", t.Kind)
	fmt.Fprintf(&b, "Status:   %s (%d%%)\n", t.Status(), t.Progress)
	fmt.Fprintf(&b, "Dates:    %s .. %s (%s)\n", t.Start, t.End, ui.FormatDays(criticalpath.Duration(t.Start, t.End)))

	if t.Assignee != "" {
		fmt.Fprintf(&b, "Assignee: %s\n", t.Assignee)
	}
	if t.Team != "" {
		fmt.Fprintf(&b, "Team:     %s\n", t.Team)
	}
	if t.ProjectID != "" {
		fmt.Fprintf(&b, "Project:  %s\n", t.ProjectID)
	}
	if t.PhaseID != "" {
		fmt.Fprintf(&b, "Phase:    %s\n", t.PhaseID)
	}
	if len(t.Dependencies) > 0 {
		deps := make([]string, 0, len(t.Dependencies))
		for _, dep := range t.Dependencies {
			deps = append(deps, highlight(dep))
		}
		fmt.Fprintf(&b, "Depends:  %s\n", strings.Join(deps, ", "))
	}

	fmt.Fprintf(&b, "Created:  %s\n", ui.FormatTimeAgo(t.CreatedAt, now))
	fmt.Fprintf(&b, "Updated:  %s\n", ui.FormatTimeAgo(t.UpdatedAt, now))

	if notes := formatTaskNotes(t.Notes); notes != "" {
		fmt.Fprintf(&b, "\nNotes:\n%s\n", notes)
	}
	return b.String()
}

func formatTaskNotes(value string) string {
	return string(markdown.SafeRender(taskDetailLineWidth, 2, []byte(value)))
}
