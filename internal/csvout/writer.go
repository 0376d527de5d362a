// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csvout writes flattened rows as the connector's CSV file.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/so4t-csv-connector/pkg/types"
)

// DefaultFileName is the output file written when no path is configured.
const DefaultFileName = "so_graph.csv"

// Columns lists the CSV columns in output order.
var Columns = []string{
	"type",
	"title",
	"body",
	"tags",
	"creation_date",
	"last_edit_date",
	"author",
	"view_count",
	"score",
	"link",
}

// Header returns the column names with underscores replaced by spaces.
// Microsoft Graph rejects underscores in column headers.
func Header() []string {
	header := make([]string, len(Columns))
	for i, c := range Columns {
		header[i] = strings.ReplaceAll(c, "_", " ")
	}
	return header
}

// Write emits the header row followed by one record per row.
func Write(w io.Writer, rows []types.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes rows to path. The data goes to a temp file in the same
// directory first and is renamed into place only after a complete write.
func WriteFile(path string, rows []types.Row) error {
	if path == "" {
		path = DefaultFileName
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := Write(tmp, rows); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming %s to %s: %w", tmpPath, path, err)
	}
	return nil
}
