package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verkkoraita/toggltempo/internal/config"
)

func TestIssueSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/2/issue/PROJ-123", r.URL.Path)
		assert.Equal(t, "summary", r.URL.Query().Get("fields"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "me@example.com", user)
		assert.Equal(t, "jira-token", pass)

		json.NewEncoder(w).Encode(map[string]any{
			"fields": map[string]any{"summary": "Fix the flaky import"},
		})
	}))
	defer srv.Close()

	client := NewClient(config.JiraConfig{BaseURL: srv.URL, Email: "me@example.com", APIToken: "jira-token"})
	summary, err := client.IssueSummary(context.Background(), "PROJ-123")
	require.NoError(t, err)
	assert.Equal(t, "Fix the flaky import", summary)
}

func TestIssueSummary_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorMessages":["Issue does not exist"]}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(config.JiraConfig{BaseURL: srv.URL, Email: "a", APIToken: "b"})
	_, err := client.IssueSummary(context.Background(), "NOPE-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "404")
}

func TestIssueSummary_EmptyKey(t *testing.T) {
	client := NewClient(config.JiraConfig{BaseURL: "http://localhost:1", Email: "a", APIToken: "b"})
	_, err := client.IssueSummary(context.Background(), "")
	assert.ErrorIs(t, err, ErrRequestFailed)
}
