package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"robotswatch/internal/common"
	"robotswatch/internal/config"
	"robotswatch/internal/urlhandler"
)

// Fetcher downloads a site's robots.txt over HTTP with bounded retries.
// Redirects are never followed: a 3xx answer is reported as-is so that a
// site silently redirecting its robots.txt surfaces as an error.
type Fetcher struct {
	httpClient *http.Client
	logger     zerolog.Logger
	cfg        *config.FetcherConfig
	sleep      func(time.Duration)
}

// NewFetcher creates a new Fetcher.
func NewFetcher(cfg *config.FetcherConfig, logger zerolog.Logger) *Fetcher {
	client := &http.Client{
		Timeout: cfg.Timeout(),
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &Fetcher{
		httpClient: client,
		logger:     logger.With().Str("component", "Fetcher").Logger(),
		cfg:        cfg,
		sleep:      time.Sleep,
	}
}

// Fetch retrieves the current robots.txt content for the given site URL.
// Timeouts and connection failures are retried up to MaxAttempts with
// RetryWait between attempts; only the final attempt's failure is surfaced.
// Any non-200 status is terminal and never retried. The body is returned as
// text with undecodable bytes replaced rather than failing.
func (f *Fetcher) Fetch(ctx context.Context, siteURL string) (string, error) {
	robotsURL := urlhandler.RobotsURL(siteURL)

	var lastErr error
	for attempt := 1; attempt <= f.cfg.MaxAttempts; attempt++ {
		body, err := f.fetchOnce(ctx, robotsURL)
		if err == nil {
			return body, nil
		}

		if isTerminal(err) {
			return "", err
		}

		lastErr = err
		if attempt < f.cfg.MaxAttempts {
			f.logger.Warn().
				Err(err).
				Str("url", robotsURL).
				Int("attempt", attempt).
				Int("max_attempts", f.cfg.MaxAttempts).
				Dur("wait", f.cfg.RetryWait()).
				Msg("Fetch attempt failed, retrying after wait")
			f.sleep(f.cfg.RetryWait())
		}
	}

	f.logger.Error().Err(lastErr).Str("url", robotsURL).Msg("All fetch attempts failed")
	return "", lastErr
}

// fetchOnce performs a single GET of the robots.txt URL.
func (f *Fetcher) fetchOnce(ctx context.Context, robotsURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return "", common.WrapErrorf(err, "creating request for %s", robotsURL)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", common.NewNetworkError(robotsURL,
				fmt.Sprintf("%s timed out before sending a valid response", robotsURL), err)
		}
		return "", common.NewNetworkError(robotsURL,
			fmt.Sprintf("there was a connection error when accessing %s", robotsURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return "", common.NewHTTPErrorWithURL(resp.StatusCode,
			fmt.Sprintf("%s returned a %d status code", robotsURL, resp.StatusCode), robotsURL)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", common.NewNetworkError(robotsURL, "failed to read response body", err)
	}

	return strings.ToValidUTF8(string(bodyBytes), "�"), nil
}

// isTerminal reports whether the fetch error should not be retried. Only
// timeouts and connection failures (classified as NetworkError) are retryable;
// non-200 statuses and request construction errors are terminal.
func isTerminal(err error) bool {
	var netErr *common.NetworkError
	return !errors.As(err, &netErr)
}

// isTimeout reports whether a transport error was caused by a timeout.
func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
