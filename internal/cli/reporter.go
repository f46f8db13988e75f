package cli

import (
	"fmt"
	"io"

	"github.com/verkkoraita/toggltempo/internal/cli/formatter"
	"github.com/verkkoraita/toggltempo/internal/domain"
)

// consoleReporter renders run events to the terminal as they happen.
type consoleReporter struct {
	out io.Writer
}

func newConsoleReporter(out io.Writer) *consoleReporter {
	return &consoleReporter{out: out}
}

func (r *consoleReporter) DateResolved(date, reason string) {
	fmt.Fprint(r.out, formatter.FormatResolvedDate(date, reason))
}

func (r *consoleReporter) EntryExcluded(raw domain.RawEntry, reason string) {
	fmt.Fprint(r.out, formatter.FormatExcluded(raw, reason))
}

func (r *consoleReporter) EntrySkipped(_ domain.RawEntry, err error) {
	fmt.Fprint(r.out, formatter.FormatSkipped(err))
}

func (r *consoleReporter) RecordError(location string, err error) {
	fmt.Fprint(r.out, formatter.FormatRecordError(location, err))
}

func (r *consoleReporter) BatchLoaded(batch *domain.ReconciliationBatch) {
	fmt.Fprint(r.out, formatter.FormatPreview(batch))
}

func (r *consoleReporter) EntrySubmitted(outcome domain.SubmissionOutcome) {
	fmt.Fprint(r.out, formatter.FormatOutcome(outcome))
}

func (r *consoleReporter) BatchSubmitted(outcomes []domain.SubmissionOutcome) {
	fmt.Fprint(r.out, formatter.FormatSummary(outcomes))
}
