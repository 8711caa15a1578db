// Package task stores the tasks of a Gantt plan and answers scheduling
// questions about them.
//
// Tasks live in a project directory as a JSONL file (one task per line).
// Every read and write holds an exclusive lock on that file, and writes
// replace it atomically, so several processes can share one plan.
//
// The public API mirrors the CLI commands:
//   - Create, Update, SetProgress, Shift, Delete for task lifecycle
//   - Show, List for querying
//   - DepAdd, DepRemove, DepSet, DepTree for dependency management
//   - CriticalPath and Summarize for plan analysis
package task

import internalstrings "github.com/amonks/gantt/internal/strings"

// Kind distinguishes ordinary tasks from milestones.
type Kind string

const (
	// KindTask is a task spanning its start and end dates (default).
	KindTask Kind = "task"

	// KindMilestone is a zero-length marker; its end date equals its start date.
	KindMilestone Kind = "milestone"
)

// ValidKinds returns all valid kind values.
func ValidKinds() []Kind {
	return []Kind{KindTask, KindMilestone}
}

// IsValid returns true if the kind is a known valid value.
func (k Kind) IsValid() bool {
	for _, valid := range ValidKinds() {
		if k == valid {
			return true
		}
	}
	return false
}

// Status is derived from a task's progress.
type Status string

const (
	// StatusPending means no progress has been recorded.
	StatusPending Status = "pending"

	// StatusInProgress means the task is partially complete.
	StatusInProgress Status = "in_progress"

	// StatusCompleted means the task reached 100% progress.
	StatusCompleted Status = "completed"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// StatusForProgress returns the status matching a progress percentage.
func StatusForProgress(progress int) Status {
	switch {
	case progress >= ProgressMax:
		return StatusCompleted
	case progress > ProgressMin:
		return StatusInProgress
	default:
		return StatusPending
	}
}

// Progress bounds, in percent.
const (
	ProgressMin = 0
	ProgressMax = 100
)

// MaxNameLength is the maximum allowed length for a task name.
const MaxNameLength = 500

// DateLayout is the format of task start and end dates.
const DateLayout = "2006-01-02"

func normalizeKind(kind Kind) Kind {
	return Kind(internalstrings.NormalizeLowerTrimSpace(string(kind)))
}

func normalizeStatus(status Status) Status {
	return Status(internalstrings.NormalizeLowerTrimSpace(string(status)))
}
