package main

import (
	"fmt"

	"github.com/amonks/gantt/internal/ui"
	"github.com/amonks/gantt/task"
	"github.com/amonks/gantt/timeline"
	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Draw the plan as a timeline with the critical path marked",
	Args:  cobra.NoArgs,
	RunE:  runTimeline,
}

var (
	timelineWidth      int
	timelineNameWidth  int
	timelineNoCritical bool
)

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().IntVar(&timelineWidth, "width", 0, "Columns used for bars (default from config)")
	timelineCmd.Flags().IntVar(&timelineNameWidth, "name-width", timeline.DefaultNameWidth, "Columns used for task names")
	timelineCmd.Flags().BoolVar(&timelineNoCritical, "no-critical", false, "Do not mark the critical path")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openTaskStoreWithConfig(cfg, task.OpenOptions{ReadOnly: true})
	if err != nil {
		return err
	}

	tasks, result, err := store.CriticalPath()
	if err != nil {
		return err
	}

	opts := timeline.Options{
		Width:        cfg.TimelineWidth(),
		NameWidth:    timelineNameWidth,
		ShowCritical: cfg.ShowCritical() && !timelineNoCritical,
		Styled:       ui.ANSIEnabled(),
	}
	if cmd.Flags().Changed("width") {
		opts.Width = timelineWidth
	}

	fmt.Print(timeline.RenderWithResult(tasks, result, opts))
	return nil
}
