package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verkkoraita/toggltempo/internal/domain"
	"github.com/verkkoraita/toggltempo/internal/service"
)

// lineErrorReporter records malformed-record reports.
type lineErrorReporter struct {
	service.NoopReporter
	locations []string
	errs      []error
}

func (r *lineErrorReporter) RecordError(location string, err error) {
	r.locations = append(r.locations, location)
	r.errs = append(r.errs, err)
}

func writeReportFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSource_ParsesRecords(t *testing.T) {
	path := writeReportFile(t, "2023-11-14", `# morning
PROJ-123  1h5m Some description
MISC-9876 5m Standup and coffee chat

# afternoon
PROJ-123 2h40m More of the same
`)
	src, err := NewFileSource(path, time.UTC, nil)
	require.NoError(t, err)
	assert.Equal(t, "2023-11-14", src.Date().Format("2006-01-02"))

	raws, err := src.FetchEntries(context.Background(), src.Date())
	require.NoError(t, err)
	require.Len(t, raws, 3)

	assert.Equal(t, "PROJ-123", raws[0].ProjectLabel)
	assert.Equal(t, time.Hour+5*time.Minute, raws[0].Duration)
	assert.Equal(t, "Some description", raws[0].Description)

	assert.Equal(t, "MISC-9876", raws[1].ProjectLabel)
	assert.Equal(t, 5*time.Minute, raws[1].Duration)
	assert.Equal(t, "Standup and coffee chat", raws[1].Description)

	assert.Equal(t, 2*time.Hour+40*time.Minute, raws[2].Duration)
}

func TestFileSource_MalformedLineSkippedRestProcessed(t *testing.T) {
	path := writeReportFile(t, "2023-11-14", `PROJ-1 1h first
PROJ-2 30m
PROJ-3 nonsense third
PROJ-4 15m fourth
`)
	rep := &lineErrorReporter{}
	src, err := NewFileSource(path, time.UTC, rep)
	require.NoError(t, err)

	raws, err := src.FetchEntries(context.Background(), src.Date())
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "PROJ-1", raws[0].ProjectLabel)
	assert.Equal(t, "PROJ-4", raws[1].ProjectLabel)

	require.Len(t, rep.errs, 2)
	assert.Contains(t, rep.locations[0], ":2")
	assert.ErrorIs(t, rep.errs[0], domain.ErrFormat)
	assert.Contains(t, rep.locations[1], ":3")
	assert.ErrorIs(t, rep.errs[1], domain.ErrFormat)
}

func TestFileSource_TwoFieldLineIsFormatError(t *testing.T) {
	_, err := parseLine("PROJ-123 1h5m")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormat)
	assert.Contains(t, err.Error(), "PROJ-123 1h5m")
}

func TestFileSource_NameMustBeDate(t *testing.T) {
	path := writeReportFile(t, "notes.txt", "PROJ-1 1h something\n")
	_, err := NewFileSource(path, time.UTC, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormat)
}

func TestFileSource_MissingFile(t *testing.T) {
	src, err := NewFileSource(filepath.Join(t.TempDir(), "2023-11-14"), time.UTC, nil)
	require.NoError(t, err)
	_, err = src.FetchEntries(context.Background(), src.Date())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening report file")
}
