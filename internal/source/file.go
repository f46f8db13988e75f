package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verkkoraita/toggltempo/internal/domain"
	"github.com/verkkoraita/toggltempo/internal/service"
	"github.com/verkkoraita/toggltempo/internal/timeutil"
)

const commentPrefix = "#"

type FileSource struct {
	path     string
	date     time.Time
	reporter service.Reporter
}

// NewFileSource creates an entry source reading a report file. The
// file's base name must be an ISO date; it names the day the entries
// belong to. Record format, one per line:
//
//	ISSUE_KEY DURATION DESCRIPTION...
//
// Blank lines and #-comments are skipped. A malformed line is
// reported and skipped; the rest of the file is still processed.
func NewFileSource(path string, loc *time.Location, reporter service.Reporter) (*FileSource, error) {
	if loc == nil {
		loc = time.Local
	}
	if reporter == nil {
		reporter = service.NoopReporter{}
	}

	date, err := timeutil.ParseISODate(filepath.Base(path), loc)
	if err != nil {
		return nil, fmt.Errorf("report file name must be a YYYY-MM-DD date: %w", err)
	}
	return &FileSource{path: path, date: date, reporter: reporter}, nil
}

// Date returns the target date carried by the file name.
func (s *FileSource) Date() time.Time {
	return s.date
}

func (s *FileSource) FetchEntries(ctx context.Context, _ time.Time) ([]domain.RawEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening report file: %w", err)
	}
	defer f.Close()

	var raws []domain.RawEntry
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		raw, err := parseLine(line)
		if err != nil {
			s.reporter.RecordError(fmt.Sprintf("%s:%d", s.path, lineNo), err)
			continue
		}
		raw.SourceID = fmt.Sprintf("line %d", lineNo)
		raws = append(raws, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}
	return raws, nil
}

func parseLine(line string) (domain.RawEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return domain.RawEntry{}, fmt.Errorf(
			"%w: line %q needs at least 3 fields: ISSUE_KEY DURATION DESCRIPTION", domain.ErrFormat, line)
	}

	duration, err := timeutil.ParseDuration(fields[1])
	if err != nil {
		return domain.RawEntry{}, err
	}

	return domain.RawEntry{
		ProjectLabel: fields[0],
		Duration:     duration,
		Description:  strings.Join(fields[2:], " "),
	}, nil
}
