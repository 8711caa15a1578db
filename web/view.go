package web

import (
	"fmt"
	"time"

	"github.com/amonks/gantt/criticalpath"
	"github.com/amonks/gantt/internal/ui"
	"github.com/amonks/gantt/task"
)

type pageData struct {
	Banner         string
	WindowStart    string
	WindowEnd      string
	WindowDays     int
	ShowCritical   bool
	CriticalLength string
	Rows           []rowData
}

type rowData struct {
	ID        string
	Name      string
	Assignee  string
	Start     string
	End       string
	Progress  int
	Milestone bool
	Critical  bool
	Placed    bool
	Left      string
	Width     string
}

func newPageData(tasks []task.Task, result criticalpath.Result, showCritical bool) pageData {
	sorted := append([]task.Task(nil), tasks...)
	task.SortByStart(sorted)

	critical := showCritical && !result.HasCycle
	data := pageData{
		Banner:       bannerText(tasks, result),
		ShowCritical: critical,
	}
	if critical && len(result.Path) > 0 {
		data.CriticalLength = ui.FormatDays(result.Length)
	}

	start, end, ok := planWindow(sorted)
	if ok {
		data.WindowStart = start.Format(task.DateLayout)
		data.WindowEnd = end.Format(task.DateLayout)
		data.WindowDays = days(start, end) + 1
	}

	for _, t := range sorted {
		row := rowData{
			ID:        t.ID,
			Name:      t.Name,
			Assignee:  t.Assignee,
			Start:     t.Start,
			End:       t.End,
			Progress:  t.Progress,
			Milestone: t.Kind == task.KindMilestone,
			Critical:  critical && result.Contains(t.ID),
		}
		if ok {
			if taskStart, taskEnd, valid := parseRange(t); valid {
				total := float64(data.WindowDays)
				left := float64(days(start, taskStart)) / total * 100
				width := float64(days(taskStart, taskEnd)+1) / total * 100
				row.Placed = true
				row.Left = fmt.Sprintf("%.2f", left)
				row.Width = fmt.Sprintf("%.2f", width)
			}
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

func planWindow(tasks []task.Task) (time.Time, time.Time, bool) {
	var start, end time.Time
	found := false
	for _, t := range tasks {
		s, e, ok := parseRange(t)
		if !ok {
			continue
		}
		if !found || s.Before(start) {
			start = s
		}
		if !found || e.After(end) {
			end = e
		}
		found = true
	}
	return start, end, found
}

func parseRange(t task.Task) (time.Time, time.Time, bool) {
	start, err := task.ParseDate(t.Start)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := task.ParseDate(t.End)
	if err != nil || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func days(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
