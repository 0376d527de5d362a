// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest records what an export run produced. The manifest is
// written next to the CSV for operators; nothing reads it back to resume
// or diff a later run.
package manifest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/so4t-csv-connector/pkg/types"
)

// Manifest is the on-disk summary of one export.
type Manifest struct {
	Instance InstanceInfo `yaml:"instance"`
	Filters  Filters      `yaml:"filters"`
	Counts   Counts       `yaml:"counts"`
	Output   string       `yaml:"output"`
	// Insecure is true when TLS verification had to be disabled.
	Insecure    bool      `yaml:"insecure,omitempty"`
	GeneratedAt time.Time `yaml:"generated_at"`
}

// InstanceInfo identifies the exported site.
type InstanceInfo struct {
	URL     string `yaml:"url"`
	Type    string `yaml:"type"`
	APIBase string `yaml:"api_base"`
}

// Filters holds the filter ids created for the run.
type Filters struct {
	Questions string `yaml:"questions"`
	Articles  string `yaml:"articles"`
}

// Counts holds item and row totals.
type Counts struct {
	Questions int `yaml:"questions"`
	Answers   int `yaml:"answers"`
	Articles  int `yaml:"articles"`
	Rows      int `yaml:"rows"`
}

// CountRows tallies rows by content type into c and sets the row total.
func (c *Counts) CountRows(rows []types.Row) {
	*c = Counts{Rows: len(rows)}
	for _, r := range rows {
		switch r.Type {
		case types.ContentQuestion:
			c.Questions++
		case types.ContentAnswer:
			c.Answers++
		case types.ContentArticle:
			c.Articles++
		}
	}
}

// Write saves m to path as YAML.
func Write(path string, m Manifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Read loads a manifest previously saved with Write.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
