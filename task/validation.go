package task

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	internalstrings "github.com/amonks/gantt/internal/strings"
	"github.com/amonks/gantt/internal/validation"
)

var (
	// ErrEmptyName is returned when a task name is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameTooLong is returned when a task name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("name exceeds maximum length")

	// ErrInvalidKind is returned when an invalid kind is provided.
	ErrInvalidKind = errors.New("invalid task kind")

	// ErrInvalidStatus is returned when an invalid status filter is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidProgress is returned when progress is outside 0-100.
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date (want YYYY-MM-DD)")

	// ErrEndBeforeStart is returned when a task ends before it starts.
	ErrEndBeforeStart = errors.New("end date is before start date")

	// ErrMilestoneSpansDays is returned when a milestone's end differs from its start.
	ErrMilestoneSpansDays = errors.New("milestone must end on its start date")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousTaskIDPrefix is returned when an ID prefix matches multiple tasks.
	ErrAmbiguousTaskIDPrefix = errors.New("ambiguous task ID prefix")

	// ErrSelfDependency is returned when trying to make a task depend on itself.
	ErrSelfDependency = errors.New("task cannot depend on itself")

	// ErrDuplicateDependency is returned when the dependency already exists.
	ErrDuplicateDependency = errors.New("dependency already exists")

	// ErrDependencyNotFound is returned when removing a dependency that doesn't exist.
	ErrDependencyNotFound = errors.New("dependency not found")

	// ErrNoTaskStore is returned when the project directory has no task store.
	ErrNoTaskStore = errors.New("no task store found (run `gantt init`)")

	// ErrReadOnlyStore is returned when writing through a read-only store.
	ErrReadOnlyStore = errors.New("task store is read-only")
)

// ValidateName checks if the name is valid.
func ValidateName(name string) error {
	if internalstrings.IsBlank(name) {
		return ErrEmptyName
	}
	if length := utf8.RuneCountInString(name); length > MaxNameLength {
		return fmt.Errorf("%w: %d > %d", ErrNameTooLong, length, MaxNameLength)
	}
	return nil
}

// ValidateProgress checks if the progress is valid.
func ValidateProgress(progress int) error {
	if progress < ProgressMin || progress > ProgressMax {
		return fmt.Errorf("%w: got %d", ErrInvalidProgress, progress)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return date, nil
}

// ValidateDates checks that both dates parse and end is not before start.
func ValidateDates(start, end string) error {
	startDate, err := ParseDate(start)
	if err != nil {
		return err
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return err
	}
	if endDate.Before(startDate) {
		return fmt.Errorf("%w: %s < %s", ErrEndBeforeStart, end, start)
	}
	return nil
}

// ValidateTask checks if a task struct is valid. Dependencies on unknown
// tasks are not checked here; the store resolves them on write.
func ValidateTask(t *Task) error {
	if err := ValidateName(t.Name); err != nil {
		return err
	}

	if !t.Kind.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidKind, t.Kind, ValidKinds())
	}

	if err := ValidateProgress(t.Progress); err != nil {
		return err
	}

	if err := ValidateDates(t.Start, t.End); err != nil {
		return err
	}

	if t.Kind == KindMilestone && t.Start != t.End {
		return ErrMilestoneSpansDays
	}

	seen := make(map[string]bool, len(t.Dependencies))
	for _, dep := range t.Dependencies {
		if dep == t.ID {
			return ErrSelfDependency
		}
		if seen[dep] {
			return fmt.Errorf("%w: %s", ErrDuplicateDependency, dep)
		}
		seen[dep] = true
	}

	return nil
}

func normalizeKindInput(kind Kind) (Kind, error) {
	normalized := normalizeKind(kind)
	if !normalized.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidKind, kind, ValidKinds())
	}
	return normalized, nil
}

func normalizeStatusInput(status Status) (Status, error) {
	normalized := normalizeStatus(status)
	if !normalized.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidStatus, status, ValidStatuses())
	}
	return normalized, nil
}
