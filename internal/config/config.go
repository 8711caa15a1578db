// Package config handles loading gantt.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/gantt/internal/paths"
)

// ProjectFile is the name of the per-project config file.
const ProjectFile = "gantt.toml"

// Defaults applied when neither config file sets a value.
const (
	DefaultTimelineWidth = 60
	DefaultServeAddr     = "127.0.0.1:8080"
)

// Config represents the gantt.toml configuration file.
type Config struct {
	Timeline Timeline `toml:"timeline"`
	Serve    Serve    `toml:"serve"`
	Store    Store    `toml:"store"`
}

// Timeline contains terminal timeline configuration.
type Timeline struct {
	// Width is the number of columns used for bars.
	Width int `toml:"width"`

	// ShowCritical highlights critical path tasks. Defaults to true.
	ShowCritical *bool `toml:"show-critical"`
}

// Serve contains web server configuration.
type Serve struct {
	// Addr is the listen address for `gantt serve`.
	Addr string `toml:"addr"`
}

// Store contains task store configuration.
type Store struct {
	// Dir is the project directory holding tasks.jsonl. Relative paths are
	// resolved against the directory the config was loaded for.
	Dir string `toml:"dir"`
}

// TimelineWidth returns the configured bar width or the default.
func (c *Config) TimelineWidth() int {
	if c.Timeline.Width > 0 {
		return c.Timeline.Width
	}
	return DefaultTimelineWidth
}

// ShowCritical reports whether critical path highlighting is enabled.
func (c *Config) ShowCritical() bool {
	return c.Timeline.ShowCritical == nil || *c.Timeline.ShowCritical
}

// ServeAddr returns the configured listen address or the default.
func (c *Config) ServeAddr() string {
	if c.Serve.Addr != "" {
		return c.Serve.Addr
	}
	return DefaultServeAddr
}

// Load loads configuration from projectPath and the global config file.
// Returns an empty config if no config files exist.
func Load(projectPath string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectPath, ProjectFile))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if merged.Store.Dir != "" && !filepath.IsAbs(merged.Store.Dir) && projectMeta.IsDefined("store", "dir") {
		merged.Store.Dir = filepath.Join(projectPath, merged.Store.Dir)
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Serve.Addr = mergeString(projectMeta.IsDefined("serve", "addr"), projectCfg.Serve.Addr, globalCfg.Serve.Addr)
	merged.Store.Dir = mergeString(projectMeta.IsDefined("store", "dir"), projectCfg.Store.Dir, globalCfg.Store.Dir)

	merged.Timeline.Width = globalCfg.Timeline.Width
	if projectMeta.IsDefined("timeline", "width") {
		merged.Timeline.Width = projectCfg.Timeline.Width
	}

	if projectMeta.IsDefined("timeline", "show-critical") {
		merged.Timeline.ShowCritical = copyBool(projectCfg.Timeline.ShowCritical)
	} else if globalMeta.IsDefined("timeline", "show-critical") {
		merged.Timeline.ShowCritical = copyBool(globalCfg.Timeline.ShowCritical)
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func copyBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
