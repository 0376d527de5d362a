//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Export builds the CLI and runs one export. Settings come from SO4T_*
// environment variables, the config file and .secrets/.
func Export() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	if _, err := os.Stat(bin); err != nil {
		return fmt.Errorf("binary missing: %w", err)
	}
	return sh.RunV(bin)
}

// Manifest runs an export that also writes so_graph.manifest.yaml.
func Manifest() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "--manifest", "so_graph.manifest.yaml")
}
