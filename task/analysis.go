package task

import (
	"sort"
	"time"

	"github.com/amonks/gantt/criticalpath"
)

// EngineTasks converts tasks to the critical path engine's input, keeping order.
func EngineTasks(tasks []Task) []criticalpath.Task {
	out := make([]criticalpath.Task, len(tasks))
	for i, t := range tasks {
		out[i] = criticalpath.Task{
			ID:           t.ID,
			Start:        t.Start,
			End:          t.End,
			Dependencies: t.Dependencies,
		}
	}
	return out
}

// CriticalPath computes the critical path over every task in the store.
func (s *Store) CriticalPath() ([]Task, criticalpath.Result, error) {
	tasks, err := s.readTasks()
	if err != nil {
		return nil, criticalpath.Result{}, err
	}
	return tasks, criticalpath.Compute(EngineTasks(tasks)), nil
}

// Summary holds dashboard metrics for a set of tasks.
type Summary struct {
	Total       int               `json:"total"`
	Completed   int               `json:"completed"`
	InProgress  int               `json:"in_progress"`
	Pending     int               `json:"pending"`
	Overdue     int               `json:"overdue"`
	AvgProgress float64           `json:"avg_progress"`
	ByAssignee  []AssigneeSummary `json:"by_assignee"`

	// DueSoon lists unfinished tasks ending within DueSoonDays, soonest first.
	DueSoon []Task `json:"due_soon"`

	// UpcomingMilestones lists milestones starting today or later.
	UpcomingMilestones []Task `json:"upcoming_milestones"`
}

// AssigneeSummary holds per-assignee counts.
type AssigneeSummary struct {
	Assignee    string  `json:"assignee"`
	Count       int     `json:"count"`
	Completed   int     `json:"completed"`
	AvgProgress float64 `json:"avg_progress"`
}

// UnassignedLabel is the assignee name used for tasks without one.
const UnassignedLabel = "unassigned"

// Dashboard list limits.
const (
	DueSoonDays          = 7
	maxSummaryAssignees  = 5
	maxSummaryDueSoon    = 5
	maxSummaryMilestones = 3
)

// Summarize computes dashboard metrics. A task is overdue when its end date
// is before today and it is not complete.
func Summarize(tasks []Task, today time.Time) Summary {
	todayStr := today.Format(DateLayout)
	dueSoonStr := today.AddDate(0, 0, DueSoonDays).Format(DateLayout)
	summary := Summary{Total: len(tasks)}

	type acc struct {
		count, completed, progress int
	}
	byAssignee := make(map[string]*acc)
	var order []string

	totalProgress := 0
	for _, t := range tasks {
		switch t.Status() {
		case StatusCompleted:
			summary.Completed++
		case StatusInProgress:
			summary.InProgress++
		default:
			summary.Pending++
		}
		if t.End < todayStr && t.Progress < ProgressMax {
			summary.Overdue++
		}
		totalProgress += t.Progress
		if t.End >= todayStr && t.End <= dueSoonStr && t.Progress < ProgressMax {
			summary.DueSoon = append(summary.DueSoon, t)
		}
		if t.Kind == KindMilestone && t.Start >= todayStr {
			summary.UpcomingMilestones = append(summary.UpcomingMilestones, t)
		}

		name := t.Assignee
		if name == "" {
			name = UnassignedLabel
		}
		a, ok := byAssignee[name]
		if !ok {
			a = &acc{}
			byAssignee[name] = a
			order = append(order, name)
		}
		a.count++
		a.progress += t.Progress
		if t.Status() == StatusCompleted {
			a.completed++
		}
	}

	if len(tasks) > 0 {
		summary.AvgProgress = float64(totalProgress) / float64(len(tasks))
	}

	for _, name := range order {
		a := byAssignee[name]
		summary.ByAssignee = append(summary.ByAssignee, AssigneeSummary{
			Assignee:    name,
			Count:       a.count,
			Completed:   a.completed,
			AvgProgress: float64(a.progress) / float64(a.count),
		})
	}
	sort.SliceStable(summary.ByAssignee, func(i, j int) bool {
		return summary.ByAssignee[i].Count > summary.ByAssignee[j].Count
	})
	summary.ByAssignee = truncateList(summary.ByAssignee, maxSummaryAssignees)

	sort.SliceStable(summary.DueSoon, func(i, j int) bool {
		return summary.DueSoon[i].End < summary.DueSoon[j].End
	})
	summary.DueSoon = truncateList(summary.DueSoon, maxSummaryDueSoon)

	sort.SliceStable(summary.UpcomingMilestones, func(i, j int) bool {
		return summary.UpcomingMilestones[i].Start < summary.UpcomingMilestones[j].Start
	})
	summary.UpcomingMilestones = truncateList(summary.UpcomingMilestones, maxSummaryMilestones)

	return summary
}

func truncateList[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
