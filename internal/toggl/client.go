package toggl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/verkkoraita/toggltempo/internal/config"
)

// DefaultBaseURL is the production Toggl Track API v9 endpoint.
const DefaultBaseURL = "https://api.track.toggl.com/api/v9"

// TimeEntry is one tracked interval as returned by the Toggl Track
// API. Duration is in seconds and negative while the entry is still
// running.
type TimeEntry struct {
	ID          int64      `json:"id"`
	WorkspaceID int64      `json:"workspace_id"`
	ProjectID   *int64     `json:"project_id"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	Start       time.Time  `json:"start"`
	Stop        *time.Time `json:"stop"`
	Duration    int64      `json:"duration"`
}

// Running reports whether the entry is still being tracked.
func (e TimeEntry) Running() bool {
	return e.Duration < 0
}

// Client provides access to the Toggl Track API.
type Client interface {
	// TimeEntries returns all entries whose tracked interval starts
	// within [start, stop).
	TimeEntries(ctx context.Context, start, stop time.Time) ([]TimeEntry, error)

	// ProjectName resolves a project ID to its display name.
	ProjectName(ctx context.Context, workspaceID, projectID int64) (string, error)

	// CreateProject creates a project in the default workspace and
	// returns its ID.
	CreateProject(ctx context.Context, name string) (int64, error)
}

type togglClient struct {
	baseURL  string
	email    string
	password string
	http     *http.Client

	// Project names are stable within a run; cache lookups so a day
	// with many entries on one project costs one request.
	projectNames map[int64]string
}

// NewClient creates a Client authenticating with the given Toggl Track
// credentials. baseURL overrides the production endpoint when non-empty.
func NewClient(cfg config.TogglConfig, baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &togglClient{
		baseURL:  baseURL,
		email:    cfg.Email,
		password: cfg.Password,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
			Timeout: 30 * time.Second,
		},
		projectNames: make(map[int64]string),
	}
}

func (c *togglClient) TimeEntries(ctx context.Context, start, stop time.Time) ([]TimeEntry, error) {
	q := url.Values{}
	q.Set("start_date", start.Format(time.RFC3339))
	q.Set("end_date", stop.Format(time.RFC3339))

	var entries []TimeEntry
	if err := c.doJSON(ctx, http.MethodGet, "/me/time_entries?"+q.Encode(), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *togglClient) ProjectName(ctx context.Context, workspaceID, projectID int64) (string, error) {
	if name, ok := c.projectNames[projectID]; ok {
		return name, nil
	}

	var project struct {
		Name string `json:"name"`
	}
	path := fmt.Sprintf("/workspaces/%d/projects/%d", workspaceID, projectID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &project); err != nil {
		return "", err
	}
	c.projectNames[projectID] = project.Name
	return project.Name, nil
}

func (c *togglClient) CreateProject(ctx context.Context, name string) (int64, error) {
	var me struct {
		DefaultWorkspaceID int64 `json:"default_workspace_id"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/me", nil, &me); err != nil {
		return 0, err
	}
	if me.DefaultWorkspaceID == 0 {
		return 0, fmt.Errorf("%w: account has no default workspace", ErrRequestFailed)
	}

	body := map[string]any{"name": name, "active": true}
	var project struct {
		ID int64 `json:"id"`
	}
	path := fmt.Sprintf("/workspaces/%d/projects", me.DefaultWorkspaceID)
	if err := c.doJSON(ctx, http.MethodPost, path, body, &project); err != nil {
		return 0, err
	}
	return project.ID, nil
}

func (c *togglClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.email, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
