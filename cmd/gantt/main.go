// Package main implements the gantt CLI tool.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/amonks/gantt/internal/config"
	"github.com/amonks/gantt/internal/paths"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "gantt",
	Short:        "Plan tasks on a timeline and find the critical path",
	SilenceUsage: true,
}

var projectDirFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDirFlag, "dir", "", "Project directory (default: config store.dir, else the current directory)")
}

// getProjectPath returns the directory whose gantt.toml is consulted: --dir
// when given, otherwise the working directory.
func getProjectPath() (string, error) {
	if projectDirFlag != "" {
		return absPath(projectDirFlag)
	}
	return paths.WorkingDir()
}

// loadConfig loads the merged global and project configuration.
func loadConfig() (*config.Config, error) {
	projectPath, err := getProjectPath()
	if err != nil {
		return nil, err
	}
	return config.Load(projectPath)
}

// resolveStoreDir returns the directory holding tasks.jsonl.
func resolveStoreDir(cfg *config.Config) (string, error) {
	if projectDirFlag != "" {
		return absPath(projectDirFlag)
	}
	if cfg != nil && cfg.Store.Dir != "" {
		return absPath(cfg.Store.Dir)
	}
	return paths.WorkingDir()
}

func absPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	cwd, err := paths.WorkingDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, path), nil
}
