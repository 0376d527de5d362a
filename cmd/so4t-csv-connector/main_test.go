package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/so4t-csv-connector/internal/secrets"
	"github.com/pdiddy/so4t-csv-connector/internal/stackapi"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"missing url", stackapi.ErrMissingURL, 2},
		{"missing token", fmt.Errorf("validating: %w", stackapi.ErrMissingToken), 2},
		{"missing key", stackapi.ErrMissingKey, 2},
		{"missing team", stackapi.ErrMissingTeam, 2},
		{"unauthorized api error", &stackapi.APIError{StatusCode: http.StatusUnauthorized}, 2},
		{"connection", fmt.Errorf("%w: refused", stackapi.ErrConnection), 3},
		{"transport", fmt.Errorf("fetching questions: %w", &url.Error{Op: "Get", URL: "https://x", Err: errors.New("reset")}), 3},
		{"bad parameter", &stackapi.APIError{StatusCode: http.StatusBadRequest, ErrorID: 400}, 1},
		{"other", errors.New("disk full"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestExportConfigPrefersExplicitOverSecrets(t *testing.T) {
	viper.Reset()
	t.Cleanup(func() {
		viper.Reset()
		bindFlags()
	})

	loadedSecrets = secrets.Secrets{secrets.APIToken: "from-file", secrets.APIKey: "key-from-file"}
	t.Cleanup(func() { loadedSecrets = nil })

	viper.Set("url", "https://stackoverflowteams.com/c/acme")
	viper.Set("token", "from-flag")

	cfg := exportConfig()
	assert.Equal(t, "https://stackoverflowteams.com/c/acme", cfg.Client.URL)
	assert.Equal(t, "from-flag", cfg.Client.Token)
	assert.Equal(t, "key-from-file", cfg.Client.Key)
	assert.Equal(t, defaultTimeout, cfg.Client.Timeout)
	assert.True(t, strings.HasPrefix(cfg.Client.UserAgent, "so4t-csv-connector/"))
}

func TestRootCommandExports(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "file-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch strings.TrimPrefix(r.URL.Path, "/api/2.3") {
		case "/tags":
			fmt.Fprint(w, `{"items": [], "has_more": false}`)
		case "/filters/create":
			fmt.Fprint(w, `{"items": [{"filter": "!f"}], "has_more": false}`)
		case "/questions":
			fmt.Fprint(w, `{"items": [{"question_id": 1, "title": "Q", "body": "<p>b</p>", "tags": ["t"], "view_count": 1, "score": 2, "creation_date": 1700000000, "link": "https://x/q/1"}], "has_more": false}`)
		case "/articles":
			fmt.Fprint(w, `{"items": [], "has_more": false}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	dir := t.TempDir()
	chdirForTest(t, dir)
	require.NoError(t, os.MkdirAll(secrets.DefaultDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(secrets.DefaultDir, secrets.APIKey), []byte("file-key\n"), 0o600))

	out := filepath.Join(dir, "out.csv")
	rootCmd.SetArgs([]string{"--url", ts.URL, "--output", out})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Question] Q")
	assert.True(t, strings.HasPrefix(string(data), "type,title,body,tags,creation date"))
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
