package timeline

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/amonks/gantt/criticalpath"
	"github.com/amonks/gantt/task"
)

// CycleWarning is the first sentence of the cycle banner.
const CycleWarning = "warning: the task dependencies contain a cycle; the critical path is unavailable."

// Banner returns the cycle warning for result, naming the tasks that could
// not be scheduled, wrapped to width columns. It returns "" when the graph
// is acyclic.
func Banner(result criticalpath.Result, tasks []task.Task, width int) string {
	if !result.HasCycle {
		return ""
	}

	names := make(map[string]string, len(tasks))
	for _, t := range tasks {
		if _, ok := names[t.ID]; !ok {
			names[t.ID] = t.Name
		}
	}

	text := CycleWarning
	if len(result.Unresolved) > 0 {
		labels := make([]string, len(result.Unresolved))
		for i, id := range result.Unresolved {
			if name := names[id]; name != "" {
				labels[i] = fmt.Sprintf("%s (%s)", name, id)
			} else {
				labels[i] = id
			}
		}
		text += " Unresolved: " + strings.Join(labels, ", ") + "."
	}

	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
