package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/verkkoraita/toggltempo/internal/config"
)

// ErrRequestFailed indicates the Jira API rejected an issue lookup.
var ErrRequestFailed = errors.New("jira request failed")

// Client looks up issues in the Jira REST API. Only the import flow
// needs it.
type Client interface {
	// IssueSummary returns the summary line of the given issue.
	IssueSummary(ctx context.Context, key string) (string, error)
}

type jiraClient struct {
	baseURL string
	email   string
	token   string
	http    *http.Client
}

// NewClient creates a Client against the configured Jira site.
func NewClient(cfg config.JiraConfig) Client {
	return &jiraClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		email:   cfg.Email,
		token:   cfg.APIToken,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *jiraClient) IssueSummary(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: empty issue key", ErrRequestFailed)
	}

	u := c.baseURL + "/rest/api/2/issue/" + url.PathEscape(key) + "?fields=summary"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.email, c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var issue struct {
		Fields struct {
			Summary string `json:"summary"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(body, &issue); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return issue.Fields.Summary, nil
}
