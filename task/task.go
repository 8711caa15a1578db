package task

import "time"

// Task is one bar on the plan.
type Task struct {
	// ID is a unique identifier (8-char base32, derived from the initial name + timestamp).
	ID string `json:"id" yaml:"id"`

	// Name is the short label of the task (max 500 chars).
	Name string `json:"name" yaml:"name"`

	// Kind is task or milestone.
	Kind Kind `json:"kind" yaml:"kind"`

	// ProjectID groups tasks by project.
	ProjectID string `json:"project_id,omitempty" yaml:"project_id,omitempty"`

	// PhaseID groups tasks by phase within a project.
	PhaseID string `json:"phase_id,omitempty" yaml:"phase_id,omitempty"`

	// Assignee is the person responsible for the task.
	Assignee string `json:"assignee,omitempty" yaml:"assignee,omitempty"`

	// Team is the team responsible for the task.
	Team string `json:"team,omitempty" yaml:"team,omitempty"`

	// Progress is the completion percentage (0-100).
	Progress int `json:"progress" yaml:"progress"`

	// Start is the first day of the task (YYYY-MM-DD).
	Start string `json:"start" yaml:"start"`

	// End is the last day of the task (YYYY-MM-DD).
	End string `json:"end" yaml:"end"`

	// Dependencies lists the IDs of tasks that must precede this one.
	Dependencies []string `json:"dependencies" yaml:"dependencies"`

	// Notes holds free-form markdown.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Status returns the status derived from the task's progress.
func (t Task) Status() Status {
	return StatusForProgress(t.Progress)
}

// DependsOn reports whether id is one of the task's dependencies.
func (t Task) DependsOn(id string) bool {
	for _, dep := range t.Dependencies {
		if dep == id {
			return true
		}
	}
	return false
}

// DepTreeNode represents a node in a dependency tree.
type DepTreeNode struct {
	// Task is the task at this node.
	Task *Task

	// Children are the tasks that this task depends on.
	Children []*DepTreeNode
}
