package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"robotswatch/internal/checker"
	"robotswatch/internal/common"
	"robotswatch/internal/config"
	"robotswatch/internal/datastore"
	"robotswatch/internal/models"
	"robotswatch/internal/notifier"
	"robotswatch/internal/reporter"
	"robotswatch/internal/urlhandler"
)

// mainLogSeparator closes out each run in the main log, as a visual break
// between runs.
var mainLogSeparator = strings.Repeat("-", 150)

// Runner coordinates one full pass over the site list: it invokes the Checker
// and Reporter for each site in input order, accumulates outcome counts and
// finishes with a summary log line and an administrator notification. Sites
// are processed strictly sequentially; one site's failure never stops the rest.
type Runner struct {
	checker  *checker.Checker
	reporter *reporter.Reporter
	notifier *notifier.Notifier
	store    *datastore.ContentStore
	cfg      *config.GlobalConfig
	errs     *common.ErrorCollector
	logger   zerolog.Logger
}

// NewRunner creates a new Runner.
func NewRunner(
	chk *checker.Checker,
	rep *reporter.Reporter,
	notif *notifier.Notifier,
	store *datastore.ContentStore,
	cfg *config.GlobalConfig,
	errs *common.ErrorCollector,
	logger zerolog.Logger,
) *Runner {
	return &Runner{
		checker:  chk,
		reporter: rep,
		notifier: notif,
		store:    store,
		cfg:      cfg,
		errs:     errs,
		logger:   logger.With().Str("component", "Runner").Logger(),
	}
}

// Run checks and reports on every site in input order and returns the
// accumulated summary.
func (r *Runner) Run(ctx context.Context, sites []models.Site) models.RunSummary {
	summary := models.NewRunSummary(time.Now())

	startMessage := fmt.Sprintf("Starting checks on %d sites.", len(sites))
	r.logger.Info().Msg(startMessage)
	r.appendMainLog(startMessage)

	for _, site := range sites {
		outcome := r.checkSite(ctx, site)
		r.reporter.Report(outcome, site)
		summary.Record(outcome.Kind)
	}

	summary.Duration = time.Since(summary.StartedAt)

	summaryMessage := "Checks and reports complete. " + summary.String()
	r.logger.Info().
		Int("no_change", summary.NoChange).
		Int("changed", summary.Changed).
		Int("first_run", summary.FirstRun).
		Int("errors", summary.Errors).
		Dur("duration", summary.Duration).
		Msg("Run complete")
	r.appendMainLog(summaryMessage + "\n\n" + mainLogSeparator)

	r.notifier.Enqueue(models.EmailMessage{
		Address:     r.cfg.NotificationConfig.AdminEmail,
		Subject:     "Robots.txt Checks Complete",
		Body:        r.notifier.AdminBody(summaryMessage, r.errs.Errors()),
		Attachments: []string{r.store.MainLogPath()},
	})

	return summary
}

// checkSite runs one site's check, converting any panic into that site's
// Error outcome so a single site can never abort the run.
func (r *Runner) checkSite(ctx context.Context, site models.Site) (outcome models.CheckOutcome) {
	defer func() {
		if rec := recover(); rec != nil {
			err := common.NewError("unexpected error for site %s: %v", site.URL, rec)
			r.logger.Error().Str("url", site.URL).Interface("panic", rec).Msg("Recovered from unexpected failure while checking site")
			r.errs.Add(err)
			outcome = models.ErrorOutcome(models.ErrorUnexpected, err.Error())
		}
	}()
	return r.checker.Check(ctx, site)
}

// Execute performs one complete run from the configured site list: load the
// sites, run all checks and reports, and flush every queued notification.
// The flush always happens, even when loading the site list fails.
func (r *Runner) Execute(ctx context.Context) error {
	r.errs.Clear()
	defer r.notifier.Flush()

	sites, rowErrs, err := urlhandler.LoadSites(r.cfg.SitesFile, r.logger)
	for _, rowErr := range rowErrs {
		r.errs.Add(rowErr)
		r.appendMainLog(rowErr.Error())
	}
	if err != nil {
		fatalMessage := fmt.Sprintf("Fatal error. %s", err.Error())
		r.logger.Error().Err(err).Msg("Fatal error before site processing")
		r.errs.Add(err)
		r.appendMainLog(fatalMessage)

		r.notifier.Enqueue(models.EmailMessage{
			Address: r.cfg.NotificationConfig.AdminEmail,
			Subject: "Robots.txt Check Fatal Error",
			Body: r.notifier.AdminBody("There was a fatal error during the latest robots.txt "+
				"checks which caused the run to terminate unexpectedly.", r.errs.Errors()),
		})
		return err
	}

	r.Run(ctx, sites)
	return nil
}

// appendMainLog records a run-level event, reporting bookkeeping failures to
// the error collector instead of failing the run.
func (r *Runner) appendMainLog(message string) {
	if err := r.store.AppendMainLog(message); err != nil {
		r.logger.Error().Err(err).Msg("Could not update the main log")
		r.errs.AddWithContext(err, "updating the main log")
	}
}
