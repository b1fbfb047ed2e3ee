package config

import "path/filepath"

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Input/output settings
	InputJSONFile  string
	OutputJSONFile string

	// History settings
	HistoryTable string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Input    string
	Output   string
	Pattern  string
	History  bool
	OpenView bool
	Limit    int
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		InputJSONFile:  DefaultInputJSONFile,
		OutputJSONFile: DefaultOutputJSONFile,
		HistoryTable:   DefaultHistoryTable,
		Flags:          Flags{Limit: DefaultHistoryLimit},
	}
}

// GetInputPath returns the records input path, using the flag if provided
func (c *Config) GetInputPath() string {
	return c.resolve(c.Flags.Input, c.InputJSONFile)
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run, stats and view always read/write
// the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	return c.resolve(c.Flags.Output, c.OutputJSONFile)
}

func (c *Config) resolve(flag, fallback string) string {
	p := flag
	if p == "" {
		p = fallback
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectPath, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
