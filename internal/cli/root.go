package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verkkoraita/toggltempo/internal/cli/formatter"
	"github.com/verkkoraita/toggltempo/internal/config"
	"github.com/verkkoraita/toggltempo/internal/service"
	"github.com/verkkoraita/toggltempo/internal/source"
	"github.com/verkkoraita/toggltempo/internal/tempo"
	"github.com/verkkoraita/toggltempo/internal/timeutil"
	"github.com/verkkoraita/toggltempo/internal/toggl"
)

// App holds the process-level collaborators CLI commands depend on.
// Tests swap them for fakes.
type App struct {
	In            io.Reader
	Out           io.Writer
	IsInteractive func() bool
	Now           func() time.Time
	Location      *time.Location

	// Endpoint overrides for the remote services; empty means
	// production.
	TogglBaseURL string
	TempoBaseURL string
}

func (a *App) defaults() {
	if a.In == nil {
		a.In = os.Stdin
	}
	if a.Out == nil {
		a.Out = os.Stdout
	}
	if a.IsInteractive == nil {
		a.IsInteractive = func() bool { return false }
	}
	if a.Now == nil {
		a.Now = time.Now
	}
	if a.Location == nil {
		a.Location = time.Local
	}
}

// NewRootCmd creates the top-level "toggltempo" command: the full
// resolve-fetch-confirm-submit pipeline, plus the import subcommand.
func NewRootCmd(app *App) *cobra.Command {
	app.defaults()

	var configPath string
	var filePath string

	root := &cobra.Command{
		Use:   "toggltempo [DATE]",
		Short: "Send tracked time from Toggl Track or a report file to Jira Tempo",
		Long: `Send time logging data to Jira Tempo.

If DATE is not provided, the previous workday is assumed: last Friday
when run on a Monday, yesterday otherwise. Public holidays are not
considered. Use YYYY-MM-DD to submit a specific day.

With --file, entries are read from a report file instead of the Toggl
Track API. The file name must be the date (YYYY-MM-DD) and each line
reads:

    # Comments and blank lines are ignored
    PROJ-123  1h5m Some description that may contain spaces
    MISC-9876 5m   First field is the issue key, second the duration`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dateArg string
			if len(args) == 1 {
				dateArg = args[0]
			}
			return runSync(cmd, app, configPath, filePath, dateArg)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file (default ~/.config/toggltempo.yaml)")
	root.Flags().StringVar(&filePath, "file", "", "Read entries from a report file instead of the Toggl Track API")

	root.AddCommand(newImportCmd(app, &configPath))

	return root
}

// loadConfig reads the config file, writing the first-run template and
// printing setup help when it does not exist yet.
func loadConfig(app *App, configPath string) (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrNotInitialized) {
		fmt.Fprint(app.Out, formatter.FormatSetupHelp(path))
		return nil, err
	}
	return cfg, err
}

func runSync(cmd *cobra.Command, app *App, configPath, filePath, dateArg string) error {
	cfg, err := loadConfig(app, configPath)
	if err != nil {
		return err
	}
	if err := cfg.RequireTempo(); err != nil {
		return err
	}

	reporter := newConsoleReporter(app.Out)

	var src service.EntrySource
	var date time.Time

	switch {
	case filePath != "":
		if dateArg != "" {
			return fmt.Errorf("the DATE argument cannot be combined with --file; the file name carries the date")
		}
		fileSrc, err := source.NewFileSource(filePath, app.Location, reporter)
		if err != nil {
			return err
		}
		src = fileSrc
		date = fileSrc.Date()

	default:
		if err := cfg.RequireToggl(); err != nil {
			return err
		}
		src = source.NewTogglSource(toggl.NewClient(cfg.Toggl, app.TogglBaseURL), app.Location)

		if dateArg != "" {
			date, err = timeutil.ParseISODate(dateArg, app.Location)
			if err != nil {
				return err
			}
		} else {
			today := app.Now().In(app.Location)
			date = timeutil.PreviousWorkday(today)
			reason := "yesterday"
			if today.Weekday() == time.Monday {
				reason = "last Friday"
			}
			reporter.DateResolved(date.Format(timeutil.ISODate), reason)
		}
	}

	var confirmer service.Confirmer
	if app.IsInteractive() {
		confirmer = huhConfirmer{}
	} else {
		confirmer = newPromptConfirmer(app.In, app.Out)
	}

	session := service.NewSessionService(
		src,
		service.NewSubmitService(tempo.NewClient(cfg.Tempo, app.TempoBaseURL), reporter),
		confirmer,
		reporter,
	)

	report, err := session.Run(cmd.Context(), date)
	if errors.Is(err, service.ErrDeclined) {
		fmt.Fprintln(app.Out, "Aborting, goodbye.")
		return nil
	}
	if err != nil {
		return err
	}

	if failed := report.FailedCount(); failed > 0 {
		return fmt.Errorf("%d of %d worklogs failed", failed, len(report.Outcomes))
	}
	return nil
}
