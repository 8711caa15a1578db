package task

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid", "Pour foundation", nil},
		{"empty", "", ErrEmptyName},
		{"whitespace", " \t ", ErrEmptyName},
		{"max length", strings.Repeat("a", MaxNameLength), nil},
		{"too long", strings.Repeat("a", MaxNameLength+1), ErrNameTooLong},
		{"multibyte at max", strings.Repeat("é", MaxNameLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProgress(t *testing.T) {
	for _, p := range []int{0, 1, 50, 100} {
		if err := ValidateProgress(p); err != nil {
			t.Errorf("ValidateProgress(%d) = %v, want nil", p, err)
		}
	}
	for _, p := range []int{-1, 101} {
		if err := ValidateProgress(p); !errors.Is(err, ErrInvalidProgress) {
			t.Errorf("ValidateProgress(%d) = %v, want ErrInvalidProgress", p, err)
		}
	}
}

func TestValidateDates(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{"same day", "2024-01-01", "2024-01-01", nil},
		{"span", "2024-01-01", "2024-01-05", nil},
		{"end before start", "2024-01-05", "2024-01-01", ErrEndBeforeStart},
		{"bad start", "2024-13-01", "2024-01-01", ErrInvalidDate},
		{"bad end", "2024-01-01", "tomorrow", ErrInvalidDate},
		{"empty", "", "", ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDates(tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDates(%q, %q) = %v, want %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTask(t *testing.T) {
	valid := func() Task {
		return Task{
			ID:    "abc12345",
			Name:  "Frame walls",
			Kind:  KindTask,
			Start: "2024-01-01",
			End:   "2024-01-03",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{"valid", func(*Task) {}, nil},
		{"empty name", func(t *Task) { t.Name = "" }, ErrEmptyName},
		{"unknown kind", func(t *Task) { t.Kind = "epic" }, ErrInvalidKind},
		{"progress", func(t *Task) { t.Progress = 150 }, ErrInvalidProgress},
		{"dates", func(t *Task) { t.End = "2023-12-31" }, ErrEndBeforeStart},
		{"milestone span", func(t *Task) { t.Kind = KindMilestone }, ErrMilestoneSpansDays},
		{"milestone single day", func(t *Task) { t.Kind = KindMilestone; t.End = t.Start }, nil},
		{"self dependency", func(t *Task) { t.Dependencies = []string{t.ID} }, ErrSelfDependency},
		{"duplicate dependency", func(t *Task) { t.Dependencies = []string{"x", "x"} }, ErrDuplicateDependency},
		{"dependencies", func(t *Task) { t.Dependencies = []string{"x", "y"} }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid()
			tt.mutate(&task)
			err := ValidateTask(&task)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTask() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInvalidKindListsValidValues(t *testing.T) {
	_, err := normalizeKindInput("epic")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "task") || !strings.Contains(err.Error(), "milestone") {
		t.Errorf("expected valid kinds in error, got %q", err.Error())
	}
}

func TestStatusForProgress(t *testing.T) {
	tests := []struct {
		progress int
		want     Status
	}{
		{0, StatusPending},
		{1, StatusInProgress},
		{99, StatusInProgress},
		{100, StatusCompleted},
	}

	for _, tt := range tests {
		if got := StatusForProgress(tt.progress); got != tt.want {
			t.Errorf("StatusForProgress(%d) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}
