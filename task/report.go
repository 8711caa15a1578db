package task

import "github.com/amonks/gantt/criticalpath"

// CriticalPathReport is the serializable form of a critical path result.
type CriticalPathReport struct {
	CriticalIDs []string           `json:"critical_ids" yaml:"critical_ids"`
	Path        []CriticalPathStep `json:"path" yaml:"path"`
	Length      int                `json:"length" yaml:"length"`
	HasCycle    bool               `json:"has_cycle" yaml:"has_cycle"`
	Unresolved  []string           `json:"unresolved" yaml:"unresolved"`
}

// CriticalPathStep is one task on the critical path.
type CriticalPathStep struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Days     int    `json:"days" yaml:"days"`
	Distance int    `json:"distance" yaml:"distance"`
}

// NewCriticalPathReport describes result in terms of tasks. Slices are
// never nil so they encode as empty lists.
func NewCriticalPathReport(tasks []Task, result criticalpath.Result) CriticalPathReport {
	byID := make(map[string]*Task, len(tasks))
	for i := range tasks {
		if _, ok := byID[tasks[i].ID]; !ok {
			byID[tasks[i].ID] = &tasks[i]
		}
	}

	report := CriticalPathReport{
		CriticalIDs: append([]string{}, result.Path...),
		Path:        make([]CriticalPathStep, 0, len(result.Path)),
		Length:      result.Length,
		HasCycle:    result.HasCycle,
		Unresolved:  append([]string{}, result.Unresolved...),
	}
	for _, id := range result.Path {
		step := CriticalPathStep{ID: id, Distance: result.Distances[id]}
		if t, ok := byID[id]; ok {
			step.Name = t.Name
			step.Start = t.Start
			step.End = t.End
			step.Days = criticalpath.Duration(t.Start, t.End)
		}
		report.Path = append(report.Path, step)
	}
	return report
}
