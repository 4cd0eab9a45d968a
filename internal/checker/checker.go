package checker

import (
	"context"

	"github.com/rs/zerolog"

	"robotswatch/internal/datastore"
	"robotswatch/internal/models"
	"robotswatch/internal/urlhandler"
)

// RobotsFetcher retrieves a site's current robots.txt content.
type RobotsFetcher interface {
	Fetch(ctx context.Context, siteURL string) (string, error)
}

// Checker runs one robots.txt check for one site: validate the URL, make sure
// the site directory exists, fetch the current content, update the stored
// snapshot pair and compare. Every path ends in exactly one CheckOutcome;
// failures are classified, never propagated, so one site can never abort a run.
type Checker struct {
	fetcher RobotsFetcher
	store   *datastore.ContentStore
	logger  zerolog.Logger
}

// NewChecker creates a new Checker.
func NewChecker(fetcher RobotsFetcher, store *datastore.ContentStore, logger zerolog.Logger) *Checker {
	return &Checker{
		fetcher: fetcher,
		store:   store,
		logger:  logger.With().Str("component", "Checker").Logger(),
	}
}

// Check performs a single robots.txt check for the given site.
func (c *Checker) Check(ctx context.Context, site models.Site) models.CheckOutcome {
	if err := urlhandler.ValidateSiteURL(site.URL); err != nil {
		c.logger.Warn().Str("url", site.URL).Msg("Site URL failed validation; no network call made")
		return models.ErrorOutcome(models.ErrorValidation, err.Error())
	}

	siteKey, err := urlhandler.SiteKey(site.URL)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", site.URL).Msg("Could not derive site key")
		return models.ErrorOutcome(models.ErrorValidation, err.Error())
	}

	if _, err := c.store.EnsureSiteDir(siteKey); err != nil {
		c.logger.Error().Err(err).Str("site_key", siteKey).Msg("Could not create site directory")
		return models.ErrorOutcome(models.ErrorDirectory, err.Error())
	}

	content, err := c.fetcher.Fetch(ctx, site.URL)
	if err != nil {
		c.logger.Error().Err(err).Str("url", site.URL).Msg("Fetch failed")
		return models.ErrorOutcome(models.ErrorFetch, err.Error())
	}

	pair, err := c.store.Update(siteKey, content)
	if err != nil {
		// Content Store failures after a successful fetch are unanticipated;
		// classify rather than abort.
		c.logger.Error().Err(err).Str("site_key", siteKey).Msg("Could not update snapshot pair")
		return models.ErrorOutcome(models.ErrorUnexpected, err.Error())
	}

	if pair.FirstRun {
		c.logger.Info().Str("url", site.URL).Msg("First successful check")
		return models.FirstRunOutcome(pair.Latest)
	}

	if pair.Previous == pair.Latest {
		c.logger.Info().Str("url", site.URL).Msg("No change detected")
		return models.NoChangeOutcome(pair.Latest)
	}

	c.logger.Info().Str("url", site.URL).Msg("Change detected")
	return models.ChangedOutcome(pair.Previous, pair.Latest)
}
