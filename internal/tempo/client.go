package tempo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/verkkoraita/toggltempo/internal/config"
	"github.com/verkkoraita/toggltempo/internal/timeutil"
)

// DefaultBaseURL is the production Tempo Timesheets REST endpoint.
const DefaultBaseURL = "https://api.tempo.io"

// Worklogs are anchored at a fixed start time; Tempo requires one but
// the source systems carry none.
const worklogStartTime = "09:00:00"

// ErrRequestFailed indicates the Tempo API rejected a worklog request.
var ErrRequestFailed = errors.New("tempo worklog request failed")

// Worklog is one unit of time to log against an issue.
type Worklog struct {
	IssueKey    string
	Date        time.Time
	Duration    time.Duration
	Description string
}

// Client submits worklogs to the Tempo Timesheets service.
type Client interface {
	CreateWorklog(ctx context.Context, w Worklog) error
}

type tempoClient struct {
	baseURL string
	userID  string
	token   string
	http    *http.Client
}

// NewClient creates a Client submitting on behalf of the configured
// Tempo user. baseURL overrides the production endpoint when non-empty.
func NewClient(cfg config.TempoConfig, baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &tempoClient{
		baseURL: baseURL,
		userID:  cfg.UserID,
		token:   cfg.APIToken,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// worklogRequest is the JSON body sent to POST /core/3/worklogs.
type worklogRequest struct {
	IssueKey         string `json:"issueKey"`
	TimeSpentSeconds int64  `json:"timeSpentSeconds"`
	StartDate        string `json:"startDate"`
	StartTime        string `json:"startTime"`
	Description      string `json:"description"`
	AuthorAccountID  string `json:"authorAccountId"`
}

func (c *tempoClient) CreateWorklog(ctx context.Context, w Worklog) error {
	body := worklogRequest{
		IssueKey:         w.IssueKey,
		TimeSpentSeconds: int64(w.Duration / time.Second),
		StartDate:        w.Date.Format(timeutil.ISODate),
		StartTime:        worklogStartTime,
		Description:      w.Description,
		AuthorAccountID:  c.userID,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling worklog: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/core/3/worklogs", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, string(respBody))
	}
	return nil
}
