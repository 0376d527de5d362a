// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Secrets
	}{
		{
			name: "reads credential files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, APIToken, "  tok_abc123  \n")
				writeFile(t, dir, APIKey, "key_xyz789")
				return dir
			},
			want: Secrets{
				APIToken: "tok_abc123",
				APIKey:   "key_xyz789",
			},
		},
		{
			name: "returns empty set for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Secrets{},
		},
		{
			name: "skips empty and whitespace-only files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, APIKey, "valid-key")
				writeFile(t, dir, APIToken, "   \n\t  ")
				writeFile(t, dir, "empty", "")
				return dir
			},
			want: Secrets{APIKey: "valid-key"},
		},
		{
			name: "skips dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-token", "secret")
				writeFile(t, dir, APIToken, "tok_real")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: Secrets{APIToken: "tok_real"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, APIKey, "value123")

	badPath := filepath.Join(dir, APIToken)
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	var warn bytes.Buffer
	got, err := Load(dir, &warn)
	require.NoError(t, err)

	assert.Equal(t, "value123", got[APIKey])
	_, hasBad := got[APIToken]
	assert.False(t, hasBad, "unreadable file should not appear in result")
	assert.Contains(t, warn.String(), "could not read secret "+APIToken)
}

func TestLoadNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	writeFile(t, filepath.Dir(path), "file", "x")

	_, err := Load(path, nil)
	assert.ErrorContains(t, err, "reading secrets directory")
}

func TestSecretsOr(t *testing.T) {
	s := Secrets{APIToken: "from-file"}

	assert.Equal(t, "from-flag", s.Or("from-flag", APIToken))
	assert.Equal(t, "from-file", s.Or("", APIToken))
	assert.Equal(t, "", s.Or("", APIKey))
	assert.Equal(t, "", Secrets(nil).Or("", APIKey))
}

func TestSecretsNames(t *testing.T) {
	s := Secrets{APIToken: "a", APIKey: "b"}
	assert.Equal(t, []string{APIKey, APIToken}, s.Names())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
