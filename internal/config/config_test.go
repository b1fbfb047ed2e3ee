package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetInputPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath:   ".",
				InputJSONFile: "bbb.json",
				Flags:         Flags{},
			},
			expected: "bbb.json",
		},
		{
			name: "with input flag",
			config: &Config{
				ProjectPath:   "/project",
				InputJSONFile: "bbb.json",
				Flags: Flags{
					Input: "records.json",
				},
			},
			expected: "/project/records.json",
		},
		{
			name: "absolute input flag",
			config: &Config{
				ProjectPath:   "/project",
				InputJSONFile: "bbb.json",
				Flags: Flags{
					Input: "/absolute/records.json",
				},
			},
			expected: "/absolute/records.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := filepath.Abs(tt.expected)
			if err != nil {
				t.Fatalf("abs: %v", err)
			}
			result := tt.config.GetInputPath()
			if result != want {
				t.Errorf("expected %s, got %s", want, result)
			}
		})
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	t.Run("default output name", func(t *testing.T) {
		cfg := &Config{
			ProjectPath:    "/project",
			OutputJSONFile: "out.json",
		}
		if got := cfg.GetOutputPath(); got != "/project/out.json" {
			t.Errorf("expected /project/out.json, got %s", got)
		}
	})

	t.Run("output flag override", func(t *testing.T) {
		cfg := &Config{
			ProjectPath:    "/project",
			OutputJSONFile: "out.json",
			Flags:          Flags{Output: "counts.json"},
		}
		if got := cfg.GetOutputPath(); got != "/project/counts.json" {
			t.Errorf("expected /project/counts.json, got %s", got)
		}
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.InputJSONFile != DefaultInputJSONFile {
		t.Errorf("expected InputJSONFile %s, got %s", DefaultInputJSONFile, cfg.InputJSONFile)
	}

	if cfg.OutputJSONFile != DefaultOutputJSONFile {
		t.Errorf("expected OutputJSONFile %s, got %s", DefaultOutputJSONFile, cfg.OutputJSONFile)
	}

	if cfg.Flags.Limit != DefaultHistoryLimit {
		t.Errorf("expected history limit %d, got %d", DefaultHistoryLimit, cfg.Flags.Limit)
	}
}
