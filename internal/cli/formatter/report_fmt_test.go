package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/verkkoraita/toggltempo/internal/domain"
)

func previewBatch() *domain.ReconciliationBatch {
	return &domain.ReconciliationBatch{
		Date: time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC),
		Entries: []domain.TimeEntry{
			{IssueKey: "PROJ-123", Duration: 20*time.Minute + 51*time.Second, Description: "code review"},
			{IssueKey: "PROJ-456", Duration: 5*time.Hour + 10*time.Minute + 58*time.Second, Description: "component rework"},
		},
	}
}

func TestFormatPreview(t *testing.T) {
	out := FormatPreview(previewBatch())
	assert.Contains(t, out, "2023-11-14")
	assert.Contains(t, out, "PROJ-123")
	assert.Contains(t, out, "0:20:51")
	assert.Contains(t, out, "PROJ-456")
	assert.Contains(t, out, "5:10:58")
	assert.Contains(t, out, "Total time: 5:31:49")
}

func TestFormatPreview_Empty(t *testing.T) {
	out := FormatPreview(&domain.ReconciliationBatch{Date: time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC)})
	assert.Contains(t, out, "No entries to log for 2023-11-14")
}

func TestFormatOutcome(t *testing.T) {
	ok := domain.SubmissionOutcome{
		Entry:  domain.TimeEntry{IssueKey: "PROJ-123"},
		Status: domain.SubmissionSucceeded,
	}
	assert.Contains(t, FormatOutcome(ok), "✓")

	failed := domain.SubmissionOutcome{
		Entry:  domain.TimeEntry{IssueKey: "PROJ-456"},
		Status: domain.SubmissionFailed,
		Reason: "status 400",
	}
	out := FormatOutcome(failed)
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "status 400")
}

func TestFormatSummary(t *testing.T) {
	all := []domain.SubmissionOutcome{
		{Status: domain.SubmissionSucceeded},
		{Status: domain.SubmissionSucceeded},
	}
	assert.Contains(t, FormatSummary(all), "All 2 worklogs sent")

	mixed := append(all, domain.SubmissionOutcome{Status: domain.SubmissionFailed, Reason: "boom"})
	assert.Contains(t, FormatSummary(mixed), "1 of 3 worklogs failed")
}

func TestFormatExcluded(t *testing.T) {
	out := FormatExcluded(domain.RawEntry{Description: "lunch", Duration: time.Hour}, "tagged nolog")
	assert.Contains(t, out, "lunch")
	assert.Contains(t, out, "1:00:00")
	assert.Contains(t, out, "tagged nolog")
}

func TestFormatSetupHelp(t *testing.T) {
	out := FormatSetupHelp("/home/me/.config/toggltempo.yaml")
	assert.Contains(t, out, "/home/me/.config/toggltempo.yaml")
	assert.Contains(t, out, "Toggl Track")
	assert.Contains(t, out, "Tempo")
}
