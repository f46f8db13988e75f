// Package source implements the two entry sources feeding a
// reconciliation run: the Toggl Track API and a local report file.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/verkkoraita/toggltempo/internal/domain"
	"github.com/verkkoraita/toggltempo/internal/service"
	"github.com/verkkoraita/toggltempo/internal/timeutil"
	"github.com/verkkoraita/toggltempo/internal/toggl"
)

type togglSource struct {
	client toggl.Client
	loc    *time.Location
}

// NewTogglSource creates an entry source backed by the Toggl Track
// API. Day boundaries are computed in loc; using UTC here would shift
// entries across days for anyone east or west of Greenwich.
func NewTogglSource(client toggl.Client, loc *time.Location) service.EntrySource {
	if loc == nil {
		loc = time.Local
	}
	return &togglSource{client: client, loc: loc}
}

func (s *togglSource) FetchEntries(ctx context.Context, date time.Time) ([]domain.RawEntry, error) {
	start, end := timeutil.DayBounds(date, s.loc)

	fetched, err := s.client.TimeEntries(ctx, start, end)
	if err != nil {
		return nil, err
	}

	raws := make([]domain.RawEntry, 0, len(fetched))
	for _, te := range fetched {
		// The API range filter is trusted but not blindly: keep only
		// entries whose tracked interval overlaps the local day.
		if !overlaps(te, start, end) {
			continue
		}

		var label string
		if te.ProjectID != nil {
			label, err = s.client.ProjectName(ctx, te.WorkspaceID, *te.ProjectID)
			if err != nil {
				return nil, err
			}
		}

		raws = append(raws, domain.RawEntry{
			ProjectLabel: label,
			Description:  te.Description,
			Duration:     time.Duration(te.Duration) * time.Second,
			Tags:         te.Tags,
			SourceID:     fmt.Sprintf("%d", te.ID),
		})
	}
	return raws, nil
}

func overlaps(te toggl.TimeEntry, start, end time.Time) bool {
	if !te.Start.Before(end) {
		return false
	}
	if te.Stop == nil {
		// Still running, so the interval extends to now.
		return true
	}
	return te.Stop.After(start)
}
