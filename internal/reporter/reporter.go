package reporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"robotswatch/internal/common"
	"robotswatch/internal/datastore"
	"robotswatch/internal/differ"
	"robotswatch/internal/models"
	"robotswatch/internal/notifier"
	"robotswatch/internal/urlhandler"
)

// Reporter turns a check outcome into its side effects: site/main log lines,
// snapshot and diff artifacts, and queued notifications. Bookkeeping failures
// are logged and collected for the admin summary; they never fail the run.
type Reporter struct {
	store    *datastore.ContentStore
	differ   *differ.ContentDiffer
	notifier *notifier.Notifier
	errs     *common.ErrorCollector
	logger   zerolog.Logger
}

// NewReporter creates a new Reporter.
func NewReporter(store *datastore.ContentStore, contentDiffer *differ.ContentDiffer, notif *notifier.Notifier, errs *common.ErrorCollector, logger zerolog.Logger) *Reporter {
	return &Reporter{
		store:    store,
		differ:   contentDiffer,
		notifier: notif,
		errs:     errs,
		logger:   logger.With().Str("component", "Reporter").Logger(),
	}
}

// Report produces all side effects for one site's outcome.
func (r *Reporter) Report(outcome models.CheckOutcome, site models.Site) {
	timestamp := time.Now()

	siteKey, keyErr := urlhandler.SiteKey(site.URL)

	switch outcome.Kind {
	case models.OutcomeNoChange:
		r.reportNoChange(site, siteKey, keyErr)
	case models.OutcomeFirstRun:
		r.reportFirstRun(outcome, site, siteKey, keyErr, timestamp)
	case models.OutcomeChanged:
		r.reportChanged(outcome, site, siteKey, keyErr, timestamp)
	case models.OutcomeError:
		r.reportError(outcome, site, siteKey, keyErr)
	}
}

func (r *Reporter) reportNoChange(site models.Site, siteKey string, keyErr error) {
	message := fmt.Sprintf("No change: %s. No changes to robots.txt file.", site.URL)
	r.appendSiteLog(siteKey, keyErr, message)
	r.logger.Info().Str("url", site.URL).Msg(message)
}

func (r *Reporter) reportFirstRun(outcome models.CheckOutcome, site models.Site, siteKey string, keyErr error, timestamp time.Time) {
	message := fmt.Sprintf("First run: %s. First successful check of robots.txt file.", site.URL)
	r.appendSiteLog(siteKey, keyErr, message)
	r.appendMainLog(message)
	r.logger.Info().Str("url", site.URL).Msg(message)

	if keyErr == nil {
		if _, err := r.createSnapshot(siteKey, outcome.Latest, timestamp); err != nil {
			r.collect(err, "creating first-run snapshot for "+site.URL)
		}
	}

	body := fmt.Sprintf("The first successful check of the %s robots.txt file is complete. "+
		"The extracted file content is shown below."+
		"\n\n-----START OF FILE-----\n\n%s\n\n-----END OF FILE-----\n\n"+
		"Going forwards, you'll receive an email if the robots.txt file changes "+
		"or if there's an error during the check. Otherwise, you can assume "+
		"that the file has not changed.", site.URL, outcome.Latest)

	r.notifier.Enqueue(models.EmailMessage{
		Address: site.Email,
		Subject: fmt.Sprintf("First %s Robots.txt Check Complete", site.Name),
		Body:    r.notifier.UserBody(body),
	})
}

func (r *Reporter) reportChanged(outcome models.CheckOutcome, site models.Site, siteKey string, keyErr error, timestamp time.Time) {
	message := fmt.Sprintf("Change: %s. Change detected in the robots.txt file.", site.URL)
	r.appendSiteLog(siteKey, keyErr, message)
	r.appendMainLog(message)
	r.logger.Info().Str("url", site.URL).Msg(message)

	var attachments []string
	if keyErr == nil {
		if _, err := r.createSnapshot(siteKey, outcome.Latest, timestamp); err != nil {
			r.collect(err, "creating change snapshot for "+site.URL)
		}

		diffResult := r.differ.Diff(outcome.Previous, outcome.Latest)
		diffPath, err := r.createDiffFile(siteKey, site.URL, diffResult, timestamp)
		if err != nil {
			r.collect(err, "creating diff file for "+site.URL)
		} else {
			attachments = append(attachments, diffPath, r.store.OldFilePath(siteKey))
		}
	}

	body := fmt.Sprintf("A change has been detected in the %s robots.txt file. "+
		"The latest and previously recorded file contents are shown below."+
		"\n\n-----START OF NEW FILE-----\n\n%s\n\n-----END OF NEW FILE-----"+
		"\n\n-----START OF OLD FILE-----\n\n%s\n\n-----END OF OLD FILE-----",
		site.URL, outcome.Latest, outcome.Previous)

	r.notifier.Enqueue(models.EmailMessage{
		Address:     site.Email,
		Subject:     fmt.Sprintf("%s Robots.txt Change", site.Name),
		Body:        r.notifier.UserBody(body),
		Attachments: attachments,
	})
}

func (r *Reporter) reportError(outcome models.CheckOutcome, site models.Site, siteKey string, keyErr error) {
	message := fmt.Sprintf("Error: %s. %s", site.URL, outcome.Message)

	// The site directory may never have been created (invalid URL, directory
	// failure); only log there when it exists.
	if keyErr == nil && r.store.SiteDirExists(siteKey) {
		r.appendSiteLog(siteKey, keyErr, message)
	}
	r.appendMainLog(message)
	r.logger.Error().Str("url", site.URL).Str("error_kind", outcome.ErrKind.String()).Msg(message)

	body := fmt.Sprintf("There was an error while checking the %s robots.txt file. "+
		"The check was not completed. The details are shown below.\n\n[%s] %s",
		site.URL, outcome.ErrKind, outcome.Message)

	r.notifier.Enqueue(models.EmailMessage{
		Address: site.Email,
		Subject: fmt.Sprintf("%s Robots.txt Check Error", site.Name),
		Body:    r.notifier.UserBody(body),
	})
}

// createSnapshot writes the latest content to a timestamped file under the
// site's snapshots directory and returns its path.
func (r *Reporter) createSnapshot(siteKey, content string, timestamp time.Time) (string, error) {
	dir := r.store.SnapshotsDir(siteKey)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", common.WrapErrorf(err, "could not create snapshots directory '%s'", dir)
	}

	path := filepath.Join(dir, common.FormatFileTimestamp(timestamp)+" Snapshot.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", common.WrapErrorf(err, "could not write snapshot '%s'", path)
	}

	r.logger.Debug().Str("path", path).Msg("Snapshot created")
	return path, nil
}

func (r *Reporter) appendSiteLog(siteKey string, keyErr error, message string) {
	if keyErr != nil {
		return
	}
	if err := r.store.AppendSiteLog(siteKey, message); err != nil {
		r.collect(err, "updating site log")
	}
}

func (r *Reporter) appendMainLog(message string) {
	if err := r.store.AppendMainLog(message); err != nil {
		r.collect(err, "updating main log")
	}
}

func (r *Reporter) collect(err error, context string) {
	r.logger.Error().Err(err).Msg("Report bookkeeping failed: " + context)
	r.errs.AddWithContext(err, context)
}
