package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verkkoraita/toggltempo/internal/domain"
)

func threeTimeEntries() *domain.ReconciliationBatch {
	return &domain.ReconciliationBatch{
		Date: testDate,
		Entries: []domain.TimeEntry{
			{Date: testDate, IssueKey: "PROJ-1", Duration: time.Hour, Description: "first"},
			{Date: testDate, IssueKey: "PROJ-2", Duration: 30 * time.Minute, Description: "second"},
			{Date: testDate, IssueKey: "PROJ-3", Duration: 15 * time.Minute, Description: "third"},
		},
	}
}

func TestSubmit_AllSucceed(t *testing.T) {
	client := &fakeTempo{}
	rep := &recordingReporter{}
	outcomes := NewSubmitService(client, rep).Submit(context.Background(), threeTimeEntries())

	require.Len(t, outcomes, 3)
	for i, o := range outcomes {
		assert.Equal(t, domain.SubmissionSucceeded, o.Status, "outcome %d", i)
		assert.Empty(t, o.Reason)
	}
	require.Len(t, client.created, 3)
	assert.Equal(t, "PROJ-1", client.created[0].IssueKey)
	assert.Equal(t, "first", client.created[0].Description)
	assert.Len(t, rep.submitted, 3)
}

func TestSubmit_MiddleFailureIsIsolated(t *testing.T) {
	client := &fakeTempo{failKeys: map[string]error{
		"PROJ-2": errors.New("tempo worklog request failed: status 400"),
	}}
	outcomes := NewSubmitService(client, NoopReporter{}).Submit(context.Background(), threeTimeEntries())

	require.Len(t, outcomes, 3)
	assert.Equal(t, domain.SubmissionSucceeded, outcomes[0].Status)
	assert.Equal(t, domain.SubmissionFailed, outcomes[1].Status)
	assert.Contains(t, outcomes[1].Reason, "status 400")
	assert.Equal(t, domain.SubmissionSucceeded, outcomes[2].Status)

	// Order matches the batch, and the third entry was still sent.
	assert.Equal(t, "PROJ-1", outcomes[0].Entry.IssueKey)
	assert.Equal(t, "PROJ-2", outcomes[1].Entry.IssueKey)
	assert.Equal(t, "PROJ-3", outcomes[2].Entry.IssueKey)
	require.Len(t, client.created, 2)
	assert.Equal(t, "PROJ-3", client.created[1].IssueKey)
}

func TestSubmit_EmptyBatch(t *testing.T) {
	outcomes := NewSubmitService(&fakeTempo{}, NoopReporter{}).Submit(
		context.Background(), &domain.ReconciliationBatch{Date: testDate})
	assert.Empty(t, outcomes)
}
