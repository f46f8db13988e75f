package service

import "github.com/verkkoraita/toggltempo/internal/domain"

// FilterExcluded drops raw entries carrying the exclusion tag before
// normalization. Each drop is reported; none of them ever reach the
// preview or the submitter.
func FilterExcluded(raws []domain.RawEntry, reporter Reporter) []domain.RawEntry {
	kept := make([]domain.RawEntry, 0, len(raws))
	for _, raw := range raws {
		if raw.Excluded() {
			reporter.EntryExcluded(raw, "tagged "+domain.ExclusionTag)
			continue
		}
		kept = append(kept, raw)
	}
	return kept
}
