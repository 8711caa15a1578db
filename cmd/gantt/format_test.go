package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"

	"github.com/amonks/gantt/criticalpath"
	"github.com/amonks/gantt/task"
)

func plainHighlight(id string, _ int) string { return id }

func identity(id string) string { return id }

func samplePlan() []task.Task {
	return []task.Task{
		{ID: "design", Name: "Design", Kind: task.KindTask, Start: "2024-01-01", End: "2024-01-05", Progress: 100, Assignee: "alice"},
		{ID: "build", Name: "Build", Kind: task.KindTask, Start: "2024-01-06", End: "2024-01-10", Progress: 50, Dependencies: []string{"design"}},
		{ID: "ship", Name: "Ship", Kind: task.KindMilestone, Start: "2024-01-10", End: "2024-01-10", Dependencies: []string{"build"}},
	}
}

func TestFormatTaskTable(t *testing.T) {
	got := formatTaskTable(samplePlan(), nil, plainHighlight)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got:\n%s", got)
	}
	if fields := strings.Fields(lines[0]); !cmp.Equal(fields, []string{"ID", "KIND", "STATUS", "START", "END", "DAYS", "PROGRESS", "ASSIGNEE", "NAME"}) {
		t.Errorf("unexpected header %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); !cmp.Equal(fields, []string{"design", "task", "completed", "2024-01-01", "2024-01-05", "4", "100%", "alice", "Design"}) {
		t.Errorf("unexpected row %q", lines[1])
	}
	if fields := strings.Fields(lines[3]); !cmp.Equal(fields, []string{"ship", "milestone", "pending", "2024-01-10", "2024-01-10", "1", "0%", "-", "Ship"}) {
		t.Errorf("unexpected row %q", lines[3])
	}
}

func TestFormatTaskTableEmpty(t *testing.T) {
	if got := formatTaskTable(nil, nil, plainHighlight); got != "No tasks found.\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFormatTaskDetail(t *testing.T) {
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	item := samplePlan()[1]
	item.Team = "platform"
	item.CreatedAt = now.Add(-2 * time.Hour)
	item.UpdatedAt = now.Add(-5 * time.Minute)

	got := formatTaskDetail(item, identity, now)

	for _, want := range []string{
		"ID:       build\n",
		"Status:   in_progress (50%)\n",
		"Dates:    2024-01-06 .. 2024-01-10 (4 days)\n",
		"Team:     platform\n",
		"Depends:  design\n",
		"Created:  2h ago\n",
		"Updated:  5m ago\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in detail, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Assignee:") || strings.Contains(got, "Notes:") {
		t.Errorf("expected empty fields to be omitted, got:\n%s", got)
	}
}

func TestFormatTaskDetailNotes(t *testing.T) {
	item := samplePlan()[0]
	item.Notes = "remember the **budget**"

	got := formatTaskDetail(item, identity, time.Now())

	if !strings.Contains(got, "\nNotes:\n") || !strings.Contains(got, "budget") {
		t.Errorf("expected rendered notes, got:\n%s", got)
	}
}

func TestPrintDepTree(t *testing.T) {
	plan := samplePlan()
	root := &task.DepTreeNode{
		Task: &plan[2],
		Children: []*task.DepTreeNode{
			{Task: &plan[1], Children: []*task.DepTreeNode{{Task: &plan[0]}}},
		},
	}

	var buf bytes.Buffer
	printDepTree(&buf, root, "", true, identity)

	want := strings.Join([]string{
		"[ ] Ship (ship)",
		" └── [~] Build (build)",
		"     └── [x] Design (design)",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintDepTreeSiblings(t *testing.T) {
	plan := samplePlan()
	root := &task.DepTreeNode{
		Task: &plan[2],
		Children: []*task.DepTreeNode{
			{Task: &plan[1], Children: []*task.DepTreeNode{{Task: &plan[0]}}},
			{Task: &plan[0]},
		},
	}

	var buf bytes.Buffer
	printDepTree(&buf, root, "", true, identity)

	want := strings.Join([]string{
		"[ ] Ship (ship)",
		" ├── [~] Build (build)",
		" │   └── [x] Design (design)",
		" └── [x] Design (design)",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCriticalPathTable(t *testing.T) {
	plan := samplePlan()
	result := criticalpath.Compute(task.EngineTasks(plan))

	var buf bytes.Buffer
	if err := writeCriticalPath(&buf, "table", plan, result); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := buf.String()

	lines := strings.Split(got, "\n")
	if fields := strings.Fields(lines[1]); !cmp.Equal(fields, []string{"1", "design", "2024-01-01", "2024-01-05", "4", "4", "Design"}) {
		t.Errorf("unexpected first step %q", lines[1])
	}
	if !strings.HasSuffix(got, "\ncritical path: 9 days, 3 tasks\n") {
		t.Errorf("expected footer, got:\n%s", got)
	}
}

func TestWriteCriticalPathYAML(t *testing.T) {
	plan := samplePlan()
	result := criticalpath.Compute(task.EngineTasks(plan))

	var buf bytes.Buffer
	if err := writeCriticalPath(&buf, "yaml", plan, result); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !strings.Contains(buf.String(), "critical_ids:") || !strings.Contains(buf.String(), "has_cycle: false") {
		t.Fatalf("expected snake_case keys, got:\n%s", buf.String())
	}

	var report task.CriticalPathReport
	if err := yaml.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(task.NewCriticalPathReport(plan, result), report, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCriticalPathCycleTableIsEmpty(t *testing.T) {
	plan := []task.Task{
		{ID: "a", Name: "A", Start: "2024-01-01", End: "2024-01-02", Dependencies: []string{"b"}},
		{ID: "b", Name: "B", Start: "2024-01-01", End: "2024-01-02", Dependencies: []string{"a"}},
	}
	result := criticalpath.Compute(task.EngineTasks(plan))

	var buf bytes.Buffer
	if err := writeCriticalPath(&buf, "table", plan, result); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no table on a cycle, got %q", buf.String())
	}
}

func TestValidateCriticalFormat(t *testing.T) {
	for _, format := range []string{"table", "json", "yaml"} {
		if err := validateCriticalFormat(format); err != nil {
			t.Errorf("%s: unexpected error %v", format, err)
		}
	}
	if err := validateCriticalFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestImportFormatFor(t *testing.T) {
	tests := []struct {
		path, explicit, want string
		wantErr              bool
	}{
		{path: "plan.json", want: "json"},
		{path: "plan.YAML", want: "yaml"},
		{path: "plan.yml", want: "yaml"},
		{path: "-", want: "json"},
		{path: "plan.txt", explicit: "yaml", want: "yaml"},
		{path: "plan.json", explicit: "csv", wantErr: true},
	}

	for _, tt := range tests {
		got, err := importFormatFor(tt.path, tt.explicit)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s/%s: expected error", tt.path, tt.explicit)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s/%s: unexpected error %v", tt.path, tt.explicit, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s/%s: expected %s, got %s", tt.path, tt.explicit, tt.want, got)
		}
	}
}

func TestDecodeImportYAML(t *testing.T) {
	data := []byte(`
- id: design
  name: Design
  start: 2024-01-01
  end: 2024-01-05
  assignee: alice
- id: build
  name: Build
  start: 2024-01-06
  end: 2024-01-10
  progress: 50
  dependencies: [design]
`)

	tasks, err := decodeImport(data, "yaml")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []task.Task{
		{ID: "design", Name: "Design", Start: "2024-01-01", End: "2024-01-05", Assignee: "alice"},
		{ID: "build", Name: "Build", Start: "2024-01-06", End: "2024-01-10", Progress: 50, Dependencies: []string{"design"}},
	}
	if diff := cmp.Diff(want, tasks); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeImportJSON(t *testing.T) {
	data := []byte(`[{"id":"a","name":"A","start":"2024-01-01","end":"2024-01-02","dependencies":[]}]`)

	tasks, err := decodeImport(data, "json")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "a" || tasks[0].End != "2024-01-02" {
		t.Errorf("unexpected tasks %+v", tasks)
	}

	if _, err := decodeImport([]byte(`[{"id":"a","colour":"red"}]`), "json"); err == nil {
		t.Error("expected unknown fields to be rejected")
	}
}

func TestFormatDashboard(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	today := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	got := formatDashboard(task.Summarize(samplePlan(), today))

	for _, want := range []string{
		"Tasks:        3\n",
		"Completed:    1\n",
		"In progress:  1\n",
		"Pending:      1\n",
		"Overdue:      0\n",
		"Avg progress: 50%\n",
		"By assignee\n",
		"Due in the next 7 days\n",
		"  2024-01-10  Build (50%)\n",
		"Upcoming milestones\n",
		"  2024-01-10  Ship\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in dashboard, got:\n%s", want, got)
		}
	}
}
