package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amonks/gantt/internal/ui"
	"github.com/amonks/gantt/task"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Summarize progress across the plan",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

var dashboardJSON bool

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Output as JSON")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	store, err := openTaskStoreReadOnly()
	if err != nil {
		return err
	}

	tasks, err := store.All()
	if err != nil {
		return err
	}

	summary := task.Summarize(tasks, time.Now())
	if dashboardJSON {
		return encodeJSONToStdout(summary)
	}

	fmt.Print(formatDashboard(summary))
	return nil
}

func formatDashboard(summary task.Summary) string {
	var b strings.Builder

	b.WriteString(ui.Style(ui.HeaderStyle, "Overview"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Tasks:        %d\n", summary.Total)
	fmt.Fprintf(&b, "Completed:    %d\n", summary.Completed)
	fmt.Fprintf(&b, "In progress:  %d\n", summary.InProgress)
	fmt.Fprintf(&b, "Pending:      %d\n", summary.Pending)
	overdue := fmt.Sprintf("Overdue:      %d", summary.Overdue)
	if summary.Overdue > 0 {
		overdue = ui.Style(ui.WarningStyle, overdue)
	}
	b.WriteString(overdue)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Avg progress: %.0f%%\n", summary.AvgProgress)

	if len(summary.ByAssignee) > 0 {
		b.WriteByte('\n')
		b.WriteString(ui.Style(ui.HeaderStyle, "By assignee"))
		b.WriteByte('\n')
		builder := ui.NewTableBuilder([]string{"ASSIGNEE", "TASKS", "DONE", "AVG"}, len(summary.ByAssignee))
		for _, a := range summary.ByAssignee {
			builder.AddRow([]string{
				a.Assignee,
				strconv.Itoa(a.Count),
				strconv.Itoa(a.Completed),
				fmt.Sprintf("%.0f%%", a.AvgProgress),
			})
		}
		b.WriteString(builder.String())
	}

	if len(summary.DueSoon) > 0 {
		b.WriteByte('\n')
		b.WriteString(ui.Style(ui.HeaderStyle, fmt.Sprintf("Due in the next %s", ui.FormatDays(task.DueSoonDays))))
		b.WriteByte('\n')
		for _, t := range summary.DueSoon {
			fmt.Fprintf(&b, "  %s  %s (%d%%)\n", t.End, t.Name, t.Progress)
		}
	}

	if len(summary.UpcomingMilestones) > 0 {
		b.WriteByte('\n')
		b.WriteString(ui.Style(ui.HeaderStyle, "Upcoming milestones"))
		b.WriteByte('\n')
		for _, t := range summary.UpcomingMilestones {
			fmt.Fprintf(&b, "  %s  %s\n", t.Start, t.Name)
		}
	}

	return b.String()
}
