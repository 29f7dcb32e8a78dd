// Package importer loads routine documents: a person's fixed weekly
// structure, capacity profile overrides, and optionally a seed backlog.
// Documents are YAML or JSON, decided by file extension.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RoutineSchema is the top-level document structure.
type RoutineSchema struct {
	Person  string          `json:"person" yaml:"person"`
	Profile *ProfileImport  `json:"profile,omitempty" yaml:"profile,omitempty"`
	Days    []DayImport     `json:"days" yaml:"days"`
	Items   []ItemImport    `json:"items,omitempty" yaml:"items,omitempty"`
}

// ProfileImport overrides capacity ceilings; nil fields keep defaults.
type ProfileImport struct {
	DailyMaxMin        *int    `json:"daily_max_min,omitempty" yaml:"daily_max_min,omitempty"`
	SubjectDailyMaxMin *int    `json:"subject_daily_max_min,omitempty" yaml:"subject_daily_max_min,omitempty"`
	Distribution       *string `json:"distribution,omitempty" yaml:"distribution,omitempty"`
}

// DayImport groups a weekday's blocks.
type DayImport struct {
	Weekday string        `json:"weekday" yaml:"weekday"`
	Blocks  []BlockImport `json:"blocks" yaml:"blocks"`
}

// BlockImport is one fixed-structure block.
type BlockImport struct {
	Slot     *int   `json:"slot,omitempty" yaml:"slot,omitempty"`
	Category string `json:"category" yaml:"category"`
	Subject  string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
}

// ItemImport is one seed backlog item; intake normalization fills in
// anything omitted.
type ItemImport struct {
	Title          string `json:"title" yaml:"title"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	Subject        string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Type           string `json:"type,omitempty" yaml:"type,omitempty"`
	Source         string `json:"source,omitempty" yaml:"source,omitempty"`
	DueDate        string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	DurationMin    *int   `json:"duration_min,omitempty" yaml:"duration_min,omitempty"`
	PriorityHint   string `json:"priority,omitempty" yaml:"priority,omitempty"`
	DifficultyHint string `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	PointValue     *int   `json:"point_value,omitempty" yaml:"point_value,omitempty"`
	Portable       *bool  `json:"portable,omitempty" yaml:"portable,omitempty"`
}

// LoadSchema reads and decodes a routine document from disk.
func LoadSchema(path string) (*RoutineSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading routine file: %w", err)
	}

	var schema RoutineSchema
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing YAML routine file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing JSON routine file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported routine file extension %q (expected .yaml, .yml, or .json)", ext)
	}
	return &schema, nil
}
