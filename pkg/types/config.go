package types

import "time"

// HTTPConfig holds shared HTTP settings for API requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "so4t-csv-connector/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds what the API client needs to reach an instance.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the base URL of the instance, e.g.
	// "https://stackoverflowteams.com/c/TEAM-NAME" for a hosted team or
	// "https://SUBDOMAIN.stackenterprise.co" for a self-managed site.
	URL string `json:"url" yaml:"url"`

	// Token is the API access token. Required for hosted instances.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// Key is the API key. Required for self-managed instances.
	Key string `json:"key,omitempty" yaml:"key,omitempty"`
}

// ExportConfig groups the settings for one export run.
type ExportConfig struct {
	Client ClientConfig `json:"client" yaml:"client"`

	// OutputPath is the CSV file to write (default "so_graph.csv").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// ManifestPath, when set, is where the YAML run manifest is written.
	ManifestPath string `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`
}
