package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "gantt" {
		t.Fatalf("expected root command name gantt, got %q", rootCmd.Use)
	}
}

func TestRootCommandHasVersion(t *testing.T) {
	if rootCmd.Version == "" {
		t.Fatal("expected root command version to be set")
	}
}

func TestVersionString(t *testing.T) {
	prevVersion, prevCommit := buildVersion, buildCommit
	t.Cleanup(func() {
		buildVersion, buildCommit = prevVersion, prevCommit
	})

	buildVersion = "1.2.3"
	buildCommit = "abc123"

	if got, want := versionString(), "gantt 1.2.3 (abc123)"; got != want {
		t.Fatalf("expected version string %q, got %q", want, got)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	want := []string{"critical", "dashboard", "dep", "import", "init", "serve", "task", "timeline"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestExitErrorExposesCode(t *testing.T) {
	err := fmt.Errorf("critical: %w", exitError{code: exitCodeCycle, err: errDependencyCycle})

	var exitErr interface{ ExitCode() int }
	if !errors.As(err, &exitErr) {
		t.Fatal("expected wrapped error to expose ExitCode")
	}
	if exitErr.ExitCode() != 2 {
		t.Fatalf("expected exit code 2, got %d", exitErr.ExitCode())
	}
	if !errors.Is(err, errDependencyCycle) {
		t.Fatal("expected exit error to unwrap to the cycle error")
	}
}

func TestExitErrorWithoutCause(t *testing.T) {
	if got := (exitError{code: 3}).Error(); got != "exit 3" {
		t.Fatalf("expected %q, got %q", "exit 3", got)
	}
}

func TestParseIDList(t *testing.T) {
	got := parseIDList(" abc, ,def,,ghi ")
	if diff := cmp.Diff([]string{"abc", "def", "ghi"}, got); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if got := parseIDList(""); got != nil {
		t.Fatalf("expected nil for empty list, got %v", got)
	}
}

func TestLogHighlighterUsesPrefixLengths(t *testing.T) {
	highlight := logHighlighter(map[string]int{"abcdef": 2}, func(id string, n int) string {
		return fmt.Sprintf("%s:%d", id, n)
	})

	if got := highlight("ABCDEF"); got != "ABCDEF:2" {
		t.Errorf("expected case-insensitive lookup, got %q", got)
	}
	if got := highlight("zzz"); got != "zzz:0" {
		t.Errorf("expected unknown id to get no prefix, got %q", got)
	}
	if got := highlight(""); got != "" {
		t.Errorf("expected empty id to pass through, got %q", got)
	}
}
