package formatter

import (
	"fmt"
	"strings"

	"github.com/verkkoraita/toggltempo/internal/domain"
	"github.com/verkkoraita/toggltempo/internal/timeutil"
)

// FormatResolvedDate renders the workday resolver's choice when no
// date argument was given.
func FormatResolvedDate(date, reason string) string {
	return fmt.Sprintf("%s %s\n",
		StyleDim.Render("No date given;"),
		StyleFg.Render(fmt.Sprintf("%s (%s).", date, reason)))
}

// FormatPreview renders the full ordered batch plus the grand total,
// exactly what the operator approves.
func FormatPreview(batch *domain.ReconciliationBatch) string {
	var b strings.Builder

	date := batch.Date.Format(timeutil.ISODate)
	if batch.Empty() {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("No entries to log for %s.", date)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Will log the following entries for %s:", date)))
	b.WriteString("\n\n")

	keyWidth := 0
	for _, e := range batch.Entries {
		if len(e.IssueKey) > keyWidth {
			keyWidth = len(e.IssueKey)
		}
	}
	for _, e := range batch.Entries {
		b.WriteString(fmt.Sprintf("  - %s  %s  %s\n",
			StyleBlue.Render(fmt.Sprintf("%-*s", keyWidth, e.IssueKey)),
			StyleYellow.Render(fmt.Sprintf("%10s", timeutil.FormatDuration(e.Duration))),
			StyleFg.Render(e.Description)))
	}

	b.WriteString("\n")
	b.WriteString(StyleBold.Render(fmt.Sprintf("Total time: %s", timeutil.FormatDuration(batch.Total()))))
	b.WriteString("\n")
	return b.String()
}

// FormatExcluded renders a tag-filter drop notice.
func FormatExcluded(raw domain.RawEntry, reason string) string {
	return StyleDim.Render(fmt.Sprintf("Excluded %q (%s, %s)",
		raw.Description, timeutil.FormatDuration(raw.Duration), reason)) + "\n"
}

// FormatSkipped renders a normalization failure notice.
func FormatSkipped(err error) string {
	return StyleYellow.Render(fmt.Sprintf("Skipped: %v", err)) + "\n"
}

// FormatRecordError renders a malformed source record notice.
func FormatRecordError(location string, err error) string {
	return StyleYellow.Render(fmt.Sprintf("Skipped %s: %v", location, err)) + "\n"
}

// FormatOutcome renders one per-entry submission result line.
func FormatOutcome(o domain.SubmissionOutcome) string {
	if o.Failed() {
		return fmt.Sprintf("  %s %s %s\n",
			StyleBlue.Render(o.Entry.IssueKey),
			StyleRed.Render("✗"),
			StyleRed.Render(o.Reason))
	}
	return fmt.Sprintf("  %s %s\n",
		StyleBlue.Render(o.Entry.IssueKey),
		StyleGreen.Render("✓"))
}

// FormatSummary renders the batch-level terminal report.
func FormatSummary(outcomes []domain.SubmissionOutcome) string {
	var failed int
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
	}
	if failed == 0 {
		return StyleGreen.Render(fmt.Sprintf("All %d worklogs sent.", len(outcomes))) + "\n"
	}
	return StyleRed.Render(fmt.Sprintf("%d of %d worklogs failed; the rest were sent.", failed, len(outcomes))) + "\n"
}

// FormatSetupHelp explains how to fill in a freshly written config
// template.
func FormatSetupHelp(path string) string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("Config file not found; a template has been written to %s", path)))
	b.WriteString("\n\n")
	b.WriteString(`Fill in the required options there.

For Jira Tempo Timesheets:
  - Find your Jira user ID by opening your profile in the Jira UI; the
    ID is in the address bar.
  - Create an API token under Tempo > Settings > API Integration.

For Toggl Track:
  - Enter the e-mail and password of your Toggl Track account. Leave
    them empty if you only submit report files.

For Jira (only needed by "toggltempo import"):
  - Set base_url to your site, e.g. https://your-workspace.atlassian.net,
    plus your account e-mail and an API token.
`)
	return b.String()
}
