package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amonks/gantt/criticalpath"
	"github.com/amonks/gantt/internal/ui"
	"github.com/amonks/gantt/task"
	"github.com/amonks/gantt/timeline"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errDependencyCycle = errors.New("dependency cycle: no critical path")

var criticalCmd = &cobra.Command{
	Use:   "critical",
	Short: "Show the critical path of the plan",
	Long: `Show the critical path of the plan: the longest chain of dependent
tasks, measured in days.

When the dependencies contain a cycle there is no critical path. The
command prints a warning naming the tasks on or behind the cycle and
exits with status 2. JSON and YAML output still describe the cycle.`,
	Args: cobra.NoArgs,
	RunE: runCritical,
}

var criticalFormat string

const bannerWidth = 80

func init() {
	rootCmd.AddCommand(criticalCmd)
	criticalCmd.Flags().StringVar(&criticalFormat, "format", "table", "Output format (table, json, yaml)")
}

func runCritical(cmd *cobra.Command, args []string) error {
	if err := validateCriticalFormat(criticalFormat); err != nil {
		return err
	}

	store, err := openTaskStoreReadOnly()
	if err != nil {
		return err
	}

	tasks, result, err := store.CriticalPath()
	if err != nil {
		return err
	}

	if err := writeCriticalPath(os.Stdout, criticalFormat, tasks, result); err != nil {
		return err
	}

	if result.HasCycle {
		fmt.Fprintln(os.Stderr, ui.Style(ui.WarningStyle, timeline.Banner(result, tasks, bannerWidth)))
		return exitError{code: exitCodeCycle, err: errDependencyCycle}
	}
	return nil
}

func validateCriticalFormat(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid format %q (want table, json, or yaml)", format)
	}
}

func writeCriticalPath(w io.Writer, format string, tasks []task.Task, result criticalpath.Result) error {
	report := task.NewCriticalPathReport(tasks, result)
	switch format {
	case "json":
		return encodeJSON(w, report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, formatCriticalTable(report))
		return err
	}
}

func formatCriticalTable(report task.CriticalPathReport) string {
	if report.HasCycle {
		return ""
	}
	if len(report.Path) == 0 {
		return "No tasks found.\n"
	}

	builder := ui.NewTableBuilder([]string{"#", "ID", "START", "END", "DAYS", "TOTAL", "NAME"}, len(report.Path))
	for i, step := range report.Path {
		builder.AddRow([]string{
			strconv.Itoa(i + 1),
			step.ID,
			step.Start,
			step.End,
			strconv.Itoa(step.Days),
			strconv.Itoa(step.Distance),
			ui.TruncateTableCell(step.Name),
		})
	}

	return builder.String() + fmt.Sprintf("\ncritical path: %s, %d tasks\n", ui.FormatDays(report.Length), len(report.Path))
}
