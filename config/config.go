package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// LogDir holds the per-day log files, one <date>.mylog each.
	LogDir string `yaml:"logDir"`

	// ReportPath is where the HTML report gets written.
	ReportPath string `yaml:"reportPath"`

	// DurationCheck selects the duration consistency rule: "exact"
	// requires duration == end-start, "atmost" admits shorter durations.
	DurationCheck string `yaml:"durationCheck"`

	// StaleExemptTypes are work types that never trigger the stale-limit
	// error. Sleep and job intervals routinely run long unattended.
	StaleExemptTypes []string `yaml:"staleExemptTypes"`

	WorkTypes []WorkType       `yaml:"workTypes"`
	Publisher *PublisherConfig `yaml:"publisher"`
	Output    *OutputConfig    `yaml:"output"`
}

// WorkType describes one activity category: the letter used in log
// files, a readable name and a display color.
type WorkType struct {
	Type  string `yaml:"type"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type PublisherConfig struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
}

type OutputConfig struct {
	Params map[string]string `yaml:"params"`
}

// Default is the configuration used when no config file exists.
func Default() *Config {
	conf := Config{}
	conf.applyDefaults()
	return &conf
}

func Load(path string) (*Config, error) {
	var useDefaultConf bool
	useDefaultConf = (path == "")

	if useDefaultConf {
		path = ".mylog.yaml"
	}

	conf := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && useDefaultConf {
			// No config was found, but no config path was specified either
			conf.applyDefaults()
			return &conf, nil
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	conf.applyDefaults()
	return &conf, nil
}

// defaultWorkTypes is the built-in category table; a workTypes section
// in the config file replaces it wholesale.
var defaultWorkTypes = []WorkType{
	{Type: "+", Name: "good", Color: "green"},
	{Type: "s", Name: "sleep", Color: ""},
	{Type: "-", Name: "bad", Color: "red"},
	{Type: "!", Name: "warn", Color: "yellow"},
	{Type: ":", Name: "ok", Color: ""},
	{Type: "u", Name: "uncounted", Color: ""},
	{Type: "j", Name: "job", Color: ""},
}

func (c *Config) applyDefaults() {
	if c.LogDir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			c.LogDir = filepath.Join(home, "mylog")
		}
	}

	if c.ReportPath == "" && c.LogDir != "" {
		c.ReportPath = filepath.Join(c.LogDir, "report.html")
	}

	if c.DurationCheck == "" {
		c.DurationCheck = "exact"
	}

	if c.StaleExemptTypes == nil {
		c.StaleExemptTypes = []string{"s", "j"}
	}

	if len(c.WorkTypes) == 0 {
		c.WorkTypes = defaultWorkTypes
	}
}

// TypeName resolves a work-type letter to its readable name, falling
// back to the letter itself for unknown types.
func (c *Config) TypeName(workType string) string {
	for _, wt := range c.WorkTypes {
		if wt.Type == workType {
			return wt.Name
		}
	}
	return workType
}

// TypeColor resolves a work-type letter to its display color; unknown
// or uncolored types yield the empty string.
func (c *Config) TypeColor(workType string) string {
	for _, wt := range c.WorkTypes {
		if wt.Type == workType {
			return wt.Color
		}
	}
	return ""
}

// StaleExempt reports whether a work type is excused from the
// stale-limit check.
func (c *Config) StaleExempt(workType string) bool {
	for _, t := range c.StaleExemptTypes {
		if t == workType {
			return true
		}
	}
	return false
}
