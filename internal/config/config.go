package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotInitialized indicates the configuration file did not exist and
// a template has been written in its place. The caller should point
// the operator at it and stop.
var ErrNotInitialized = errors.New("configuration file not initialized")

// Config holds credentials for the three remote services.
type Config struct {
	Tempo TempoConfig `yaml:"jira_tempo"`
	Toggl TogglConfig `yaml:"toggl_track"`
	Jira  JiraConfig  `yaml:"jira"`
}

// TempoConfig authenticates worklog submission.
type TempoConfig struct {
	UserID   string `yaml:"user_id"`
	APIToken string `yaml:"api_token"`
}

// TogglConfig authenticates time-entry fetching from Toggl Track.
type TogglConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// JiraConfig authenticates issue lookups for the import flow.
type JiraConfig struct {
	BaseURL  string `yaml:"base_url"`
	Email    string `yaml:"email"`
	APIToken string `yaml:"api_token"`
}

const configTemplate = `# toggltempo configuration.
#
# jira_tempo is always required: it authenticates worklog submission.
# toggl_track is required unless entries come from a report file.
# jira is only needed for "toggltempo import".
jira_tempo:
  user_id: ""
  api_token: ""
toggl_track:
  email: ""
  password: ""
jira:
  base_url: ""
  email: ""
  api_token: ""
`

// DefaultPath returns ~/.config/toggltempo.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "toggltempo.yaml"), nil
}

// Load reads the configuration file at path. When the file does not
// exist a commented template is written there and ErrNotInitialized is
// returned so the operator can fill it in.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if werr := writeTemplate(path); werr != nil {
			return nil, werr
		}
		return nil, fmt.Errorf("%w: %s", ErrNotInitialized, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

func writeTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}

// RequireTempo checks the credentials needed for every submission run.
func (c *Config) RequireTempo() error {
	if c.Tempo.UserID == "" || c.Tempo.APIToken == "" {
		return fmt.Errorf("jira_tempo.user_id and jira_tempo.api_token must be set in the config file")
	}
	return nil
}

// RequireToggl checks the credentials needed when entries are fetched
// from the Toggl Track API.
func (c *Config) RequireToggl() error {
	if c.Toggl.Email == "" || c.Toggl.Password == "" {
		return fmt.Errorf("toggl_track.email and toggl_track.password must be set in the config file")
	}
	return nil
}

// RequireJira checks the settings needed by the import flow.
func (c *Config) RequireJira() error {
	if c.Jira.BaseURL == "" || c.Jira.Email == "" || c.Jira.APIToken == "" {
		return fmt.Errorf("jira.base_url, jira.email and jira.api_token must be set in the config file")
	}
	return nil
}
