package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/amonks/gantt/internal/ui"
	"github.com/amonks/gantt/task"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the tasks of the current plan",
}

// task create
var taskCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new task",
	Long: `Create a new task.

The name may be given as an argument or with --name. The end date
defaults to the start date; milestones always end on their start date.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaskCreate,
}

var (
	taskCreateName     string
	taskCreateStart    string
	taskCreateEnd      string
	taskCreateKind     string
	taskCreateAssignee string
	taskCreateTeam     string
	taskCreateProject  string
	taskCreatePhase    string
	taskCreateProgress int
	taskCreateNotes    string
	taskCreateDeps     []string
)

// task update
var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>...",
	Short: "Update one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskUpdate,
}

var (
	taskUpdateName     string
	taskUpdateStart    string
	taskUpdateEnd      string
	taskUpdateKind     string
	taskUpdateAssignee string
	taskUpdateTeam     string
	taskUpdateProject  string
	taskUpdatePhase    string
	taskUpdateProgress int
	taskUpdateNotes    string
)

// task progress
var taskProgressCmd = &cobra.Command{
	Use:   "progress <id> <percent>",
	Short: "Set the completion percentage of a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskProgress,
}

// task shift
var taskShiftCmd = &cobra.Command{
	Use:   "shift <id>...",
	Short: "Move tasks earlier or later by whole days",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskShift,
}

var taskShiftDays int

// task delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks",
	Long: `Delete one or more tasks.

Deleted tasks are also removed from the dependency lists of the
remaining tasks.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskDelete,
}

// task show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show details of one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// task list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks ordered by start date",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var (
	taskListStatus   string
	taskListKind     string
	taskListAssignee string
	taskListTeam     string
	taskListProject  string
	taskListPhase    string
	taskListIDs      string
	taskListName     string
	taskListJSON     bool
)

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskCreateCmd, taskUpdateCmd, taskProgressCmd, taskShiftCmd,
		taskDeleteCmd, taskShowCmd, taskListCmd)
	addTaskFlagAliases(taskCreateCmd, taskUpdateCmd, taskListCmd)

	// task create flags
	taskCreateCmd.Flags().StringVar(&taskCreateName, "name", "", "Task name")
	taskCreateCmd.Flags().StringVar(&taskCreateStart, "start", "", "Start date (YYYY-MM-DD, required)")
	taskCreateCmd.Flags().StringVar(&taskCreateEnd, "end", "", "End date (YYYY-MM-DD, default: start)")
	taskCreateCmd.Flags().StringVar(&taskCreateKind, "kind", "task", "Kind (task, milestone)")
	taskCreateCmd.Flags().StringVar(&taskCreateAssignee, "assignee", "", "Assignee")
	taskCreateCmd.Flags().StringVar(&taskCreateTeam, "team", "", "Team")
	taskCreateCmd.Flags().StringVar(&taskCreateProject, "project", "", "Project ID")
	taskCreateCmd.Flags().StringVar(&taskCreatePhase, "phase", "", "Phase ID")
	taskCreateCmd.Flags().IntVar(&taskCreateProgress, "progress", 0, "Completion percentage (0-100)")
	taskCreateCmd.Flags().StringVar(&taskCreateNotes, "notes", "", "Markdown notes")
	taskCreateCmd.Flags().StringArrayVar(&taskCreateDeps, "deps", nil, "Dependencies (task IDs or prefixes, repeatable)")

	// task update flags
	taskUpdateCmd.Flags().StringVar(&taskUpdateName, "name", "", "New name")
	taskUpdateCmd.Flags().StringVar(&taskUpdateStart, "start", "", "New start date")
	taskUpdateCmd.Flags().StringVar(&taskUpdateEnd, "end", "", "New end date")
	taskUpdateCmd.Flags().StringVar(&taskUpdateKind, "kind", "", "New kind (task, milestone)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateAssignee, "assignee", "", "New assignee")
	taskUpdateCmd.Flags().StringVar(&taskUpdateTeam, "team", "", "New team")
	taskUpdateCmd.Flags().StringVar(&taskUpdateProject, "project", "", "New project ID")
	taskUpdateCmd.Flags().StringVar(&taskUpdatePhase, "phase", "", "New phase ID")
	taskUpdateCmd.Flags().IntVar(&taskUpdateProgress, "progress", 0, "New completion percentage (0-100)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateNotes, "notes", "", "New markdown notes")

	// task shift flags
	taskShiftCmd.Flags().IntVar(&taskShiftDays, "days", 0, "Days to move (negative moves earlier)")
	_ = taskShiftCmd.MarkFlagRequired("days")

	// task show flags
	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")

	// task list flags
	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status (pending, in_progress, completed)")
	taskListCmd.Flags().StringVar(&taskListKind, "kind", "", "Filter by kind")
	taskListCmd.Flags().StringVar(&taskListAssignee, "assignee", "", "Filter by assignee")
	taskListCmd.Flags().StringVar(&taskListTeam, "team", "", "Filter by team")
	taskListCmd.Flags().StringVar(&taskListProject, "project", "", "Filter by project ID")
	taskListCmd.Flags().StringVar(&taskListPhase, "phase", "", "Filter by phase ID")
	taskListCmd.Flags().StringVar(&taskListIDs, "id", "", "Filter by IDs (comma-separated)")
	taskListCmd.Flags().StringVar(&taskListName, "name", "", "Filter by name substring")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
	name := taskCreateName
	if len(args) > 0 {
		if cmd.Flags().Changed("name") {
			return fmt.Errorf("name given both as argument and --name")
		}
		name = args[0]
	}
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if taskCreateStart == "" {
		return fmt.Errorf("--start is required")
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	opts := task.CreateOptions{
		Kind:         task.Kind(taskCreateKind),
		Start:        taskCreateStart,
		End:          taskCreateEnd,
		ProjectID:    taskCreateProject,
		PhaseID:      taskCreatePhase,
		Assignee:     taskCreateAssignee,
		Team:         taskCreateTeam,
		Notes:        taskCreateNotes,
		Dependencies: taskCreateDeps,
	}
	if cmd.Flags().Changed("progress") {
		opts.Progress = &taskCreateProgress
	}

	created, err := store.Create(name, opts)
	if err != nil {
		return err
	}

	highlight, err := taskHighlighterForStore(store)
	if err != nil {
		return err
	}
	fmt.Printf("Created task %s: %s\n", highlight(created.ID), created.Name)
	return nil
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	if !hasChangedFlags(cmd, "name", "start", "end", "kind", "assignee", "team", "project", "phase", "progress", "notes") {
		return fmt.Errorf("at least one update flag is required")
	}

	opts := task.UpdateOptions{}
	if cmd.Flags().Changed("name") {
		opts.Name = &taskUpdateName
	}
	if cmd.Flags().Changed("start") {
		opts.Start = &taskUpdateStart
	}
	if cmd.Flags().Changed("end") {
		opts.End = &taskUpdateEnd
	}
	if cmd.Flags().Changed("kind") {
		kind := task.Kind(taskUpdateKind)
		opts.Kind = &kind
	}
	if cmd.Flags().Changed("assignee") {
		opts.Assignee = &taskUpdateAssignee
	}
	if cmd.Flags().Changed("team") {
		opts.Team = &taskUpdateTeam
	}
	if cmd.Flags().Changed("project") {
		opts.ProjectID = &taskUpdateProject
	}
	if cmd.Flags().Changed("phase") {
		opts.PhaseID = &taskUpdatePhase
	}
	if cmd.Flags().Changed("progress") {
		opts.Progress = &taskUpdateProgress
	}
	if cmd.Flags().Changed("notes") {
		opts.Notes = &taskUpdateNotes
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	updated, err := store.Update(args, opts)
	if err != nil {
		return err
	}
	return printTaskActionResults(store, "Updated", updated)
}

func runTaskProgress(cmd *cobra.Command, args []string) error {
	progress, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid progress %q: %w", args[1], task.ErrInvalidProgress)
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	updated, err := store.SetProgress(args[:1], progress)
	if err != nil {
		return err
	}
	return printTaskActionResults(store, "Updated", updated)
}

func runTaskShift(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	shifted, err := store.Shift(args, taskShiftDays)
	if err != nil {
		return err
	}
	return printTaskActionResults(store, "Shifted", shifted)
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	// Highlight against the store as it was, since deleted IDs leave the index.
	highlight, err := taskHighlighterForStore(store)
	if err != nil {
		return err
	}

	deleted, err := store.Delete(args)
	if err != nil {
		return err
	}
	for _, t := range deleted {
		fmt.Printf("Deleted task %s: %s\n", highlight(t.ID), t.Name)
	}
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	store, err := openTaskStoreReadOnly()
	if err != nil {
		return err
	}

	tasks, err := store.Show(args)
	if err != nil {
		return err
	}

	if taskShowJSON {
		return encodeJSONToStdout(tasks)
	}

	highlight, err := taskHighlighterForStore(store)
	if err != nil {
		return err
	}
	now := time.Now()
	for i, t := range tasks {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(t, highlight, now)
	}
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, handled, err := openTaskStoreReadOnlyOrEmpty(taskListJSON)
	if err != nil || handled {
		return err
	}

	filter := task.ListFilter{
		Assignee:      taskListAssignee,
		Team:          taskListTeam,
		ProjectID:     taskListProject,
		PhaseID:       taskListPhase,
		NameSubstring: taskListName,
	}
	if taskListStatus != "" {
		status := task.Status(taskListStatus)
		filter.Status = &status
	}
	if taskListKind != "" {
		kind := task.Kind(taskListKind)
		filter.Kind = &kind
	}
	if taskListIDs != "" {
		filter.IDs = parseIDList(taskListIDs)
	}

	tasks, index, err := store.ListWithIndex(filter)
	if err != nil {
		return err
	}

	if taskListJSON {
		if tasks == nil {
			tasks = []task.Task{}
		}
		return encodeJSONToStdout(tasks)
	}

	fmt.Print(formatTaskTable(tasks, index.PrefixLengths(), ui.HighlightID))
	return nil
}
