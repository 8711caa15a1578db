// Package timeline renders a task plan as a terminal Gantt chart.
//
// Each task becomes one row: a marker column, the task name, a bar scaled
// to the plan's date window, the dates and the progress. Tasks on the
// critical path are marked with "*" and, when styling is enabled, drawn in
// the critical style. When the dependency graph is cyclic the chart is
// preceded by a banner and no task is marked critical.
package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/padding"

	"github.com/amonks/gantt/criticalpath"
	"github.com/amonks/gantt/internal/ui"
	"github.com/amonks/gantt/task"
)

// Defaults used when Options leaves a size unset.
const (
	DefaultWidth     = 60
	DefaultNameWidth = 24
)

const (
	criticalMarker  = "*"
	doneRune        = '█'
	remainingRune   = '░'
	milestoneRune   = '◆'
	emptyRune       = ' '
	unknownDatesBar = "?"
)

// Options configures Render.
type Options struct {
	// Width is the number of columns available to bars.
	Width int

	// NameWidth is the column width of task names.
	NameWidth int

	// ShowCritical marks critical path tasks.
	ShowCritical bool

	// Styled enables lipgloss styling.
	Styled bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.NameWidth <= 0 {
		o.NameWidth = DefaultNameWidth
	}
	return o
}

// Render draws tasks as a timeline. The critical path is computed from the
// given tasks.
func Render(tasks []task.Task, opts Options) string {
	result := criticalpath.Compute(task.EngineTasks(tasks))
	return RenderWithResult(tasks, result, opts)
}

// RenderWithResult is Render with a precomputed critical path.
func RenderWithResult(tasks []task.Task, result criticalpath.Result, opts Options) string {
	opts = opts.withDefaults()

	if len(tasks) == 0 {
		return "no tasks\n"
	}

	var b strings.Builder
	if banner := Banner(result, tasks, opts.NameWidth+opts.Width+2); banner != "" {
		b.WriteString(style(opts, ui.WarningStyle, banner))
		b.WriteString("\n\n")
	}

	sorted := append([]task.Task(nil), tasks...)
	task.SortByStart(sorted)

	win, ok := windowFor(sorted)
	if ok {
		header := fmt.Sprintf("%s .. %s (%s)", win.start.Format(task.DateLayout), win.end.Format(task.DateLayout), ui.FormatDays(win.days))
		b.WriteString(style(opts, ui.HeaderStyle, header))
		b.WriteByte('\n')
	}

	critical := opts.ShowCritical && !result.HasCycle
	for _, t := range sorted {
		isCritical := critical && result.Contains(t.ID)

		marker := " "
		if isCritical {
			marker = criticalMarker
		}

		name := padding.String(ui.Truncate(t.Name, opts.NameWidth), uint(opts.NameWidth))
		bar := unknownDatesBar + strings.Repeat(string(emptyRune), opts.Width-1)
		if ok {
			if rendered, valid := win.bar(t, opts.Width); valid {
				bar = rendered
			}
		}
		if isCritical {
			name = style(opts, ui.CriticalStyle, name)
			bar = style(opts, ui.CriticalStyle, bar)
		}

		fmt.Fprintf(&b, "%s %s |%s| %s %s %3d%%\n", marker, name, bar, t.Start, t.End, t.Progress)
	}

	if critical && len(result.Path) > 0 {
		footer := fmt.Sprintf("%s critical path: %s, %d tasks", criticalMarker, ui.FormatDays(result.Length), len(result.Path))
		b.WriteString(style(opts, ui.MutedStyle, footer))
		b.WriteByte('\n')
	}

	return b.String()
}

func style(opts Options, s lipgloss.Style, text string) string {
	if !opts.Styled {
		return text
	}
	return s.Render(text)
}

// window is the inclusive date range covered by a plan.
type window struct {
	start, end time.Time
	days       int
}

func windowFor(tasks []task.Task) (window, bool) {
	var w window
	found := false
	for _, t := range tasks {
		start, end, ok := taskDates(t)
		if !ok {
			continue
		}
		if !found || start.Before(w.start) {
			w.start = start
		}
		if !found || end.After(w.end) {
			w.end = end
		}
		found = true
	}
	if !found {
		return window{}, false
	}
	w.days = dayOffset(w.start, w.end) + 1
	return w, true
}

// bar draws t across width columns, filling the completed share of its
// span with doneRune.
func (w window) bar(t task.Task, width int) (string, bool) {
	start, end, ok := taskDates(t)
	if !ok {
		return "", false
	}

	from := dayOffset(w.start, start) * width / w.days
	to := (dayOffset(w.start, end) + 1) * width / w.days
	from = min(from, width-1)
	if to <= from {
		to = from + 1
	}
	to = min(to, width)

	cells := []rune(strings.Repeat(string(emptyRune), width))
	if t.Kind == task.KindMilestone {
		cells[from] = milestoneRune
		return string(cells), true
	}

	span := to - from
	done := span * t.Progress / task.ProgressMax
	for i := from; i < to; i++ {
		if i-from < done {
			cells[i] = doneRune
		} else {
			cells[i] = remainingRune
		}
	}
	return string(cells), true
}

func taskDates(t task.Task) (time.Time, time.Time, bool) {
	start, err := time.Parse(task.DateLayout, t.Start)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(task.DateLayout, t.End)
	if err != nil || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func dayOffset(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
