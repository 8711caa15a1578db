// Package criticalpath finds the critical path of a task plan: the single
// longest duration-weighted chain through the dependency graph.
//
// Tasks are nodes and every dependency is an edge from the predecessor to
// the dependent task. Compute orders the graph with Kahn's algorithm, reports
// a cycle when no complete order exists, and otherwise runs a longest-path
// pass over the order and walks back from the task with the greatest
// accumulated duration.
//
// Ties are broken by encounter order: the first predecessor holding the
// greatest distance becomes the parent, and the first task in topological
// order holding the greatest distance becomes the end of the path. This is
// deterministic but arbitrary; it does not prefer earlier start dates or
// lower IDs.
package criticalpath

import (
	"math"
	"time"
)

// DateLayout is the calendar date format used for task start and end dates.
const DateLayout = "2006-01-02"

// Task is the part of a task the engine reads.
type Task struct {
	// ID identifies the task. IDs must be unique within one Compute call.
	ID string

	// Start is the first day of the task (YYYY-MM-DD).
	Start string

	// End is the last day of the task (YYYY-MM-DD).
	End string

	// Dependencies lists the IDs of the tasks this task depends on.
	Dependencies []string
}

// Result describes the critical path of a task set.
type Result struct {
	// CriticalIDs holds the IDs on the critical path. Empty on a cycle.
	CriticalIDs map[string]struct{}

	// HasCycle reports whether the dependency graph is cyclic.
	HasCycle bool

	// Path lists the critical IDs from the first task to the last.
	Path []string

	// Length is the accumulated duration of the path in days.
	Length int

	// Distances maps every task ID to the longest accumulated duration of a
	// chain ending at that task. Nil on a cycle.
	Distances map[string]int

	// Unresolved lists, in input order, the tasks that could not be ordered
	// because they sit on or behind a cycle.
	Unresolved []string
}

// Contains reports whether id is on the critical path.
func (r Result) Contains(id string) bool {
	_, ok := r.CriticalIDs[id]
	return ok
}

// Duration returns the length of a task in whole days, never less than one.
// Unparseable dates count as one day.
func Duration(start, end string) int {
	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return 1
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil {
		return 1
	}
	days := int(math.Round(float64(endDate.Sub(startDate)) / float64(24*time.Hour)))
	return max(1, days)
}

// Compute returns the critical path of tasks. It never modifies tasks.
func Compute(tasks []Task) Result {
	g := newGraph(tasks)

	order, ok := g.topoOrder()
	if !ok {
		return Result{
			CriticalIDs: map[string]struct{}{},
			HasCycle:    true,
			Unresolved:  g.unordered(order),
		}
	}

	dist := make([]int, len(g.nodes))
	parent := make([]int, len(g.nodes))
	for _, n := range order {
		best, bestPred := 0, -1
		for _, p := range g.preds[n] {
			if dist[p] > best {
				best, bestPred = dist[p], p
			}
		}
		task := g.nodes[n]
		dist[n] = best + Duration(task.Start, task.End)
		parent[n] = bestPred
	}

	result := Result{
		CriticalIDs: make(map[string]struct{}),
		Distances:   make(map[string]int, len(g.nodes)),
	}
	last := -1
	for _, n := range order {
		result.Distances[g.nodes[n].ID] = dist[n]
		if last < 0 || dist[n] > dist[last] {
			last = n
		}
	}
	if last < 0 {
		return result
	}

	result.Length = dist[last]
	for cur := last; cur >= 0; cur = parent[cur] {
		id := g.nodes[cur].ID
		result.CriticalIDs[id] = struct{}{}
		result.Path = append(result.Path, id)
	}
	for i, j := 0, len(result.Path)-1; i < j; i, j = i+1, j-1 {
		result.Path[i], result.Path[j] = result.Path[j], result.Path[i]
	}
	return result
}
