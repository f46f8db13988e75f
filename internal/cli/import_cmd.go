package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verkkoraita/toggltempo/internal/cli/formatter"
	"github.com/verkkoraita/toggltempo/internal/jira"
	"github.com/verkkoraita/toggltempo/internal/toggl"
)

// newImportCmd creates "toggltempo import ISSUE-KEY": a convenience
// that creates a Toggl Track project named after the Jira issue, so
// tracked entries pick up the right issue key later.
func newImportCmd(app *App, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import ISSUE-KEY",
		Short: "Create a Toggl Track project from a Jira issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			issueKey := args[0]

			cfg, err := loadConfig(app, *configPath)
			if err != nil {
				return err
			}
			if err := cfg.RequireJira(); err != nil {
				return err
			}
			if err := cfg.RequireToggl(); err != nil {
				return err
			}

			summary, err := jira.NewClient(cfg.Jira).IssueSummary(cmd.Context(), issueKey)
			if err != nil {
				return err
			}

			name := issueKey + " " + summary
			togglClient := toggl.NewClient(cfg.Toggl, app.TogglBaseURL)
			if _, err := togglClient.CreateProject(cmd.Context(), name); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "%s\n", formatter.StyleGreen.Render(
				fmt.Sprintf("Created Toggl Track project %q", name)))
			return nil
		},
	}
}
