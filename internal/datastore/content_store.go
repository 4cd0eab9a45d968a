package datastore

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"robotswatch/internal/common"
	"robotswatch/internal/config"
)

const (
	oldFileName     = "old_file.txt"
	newFileName     = "new_file.txt"
	snapshotsDir    = "snapshots"
	defaultFileMode = 0644
	defaultDirMode  = 0755
)

// SnapshotPair is the per-site record of the last two successfully fetched
// robots.txt versions. Previous is empty and FirstRun true before the first
// successful check.
type SnapshotPair struct {
	Previous string
	Latest   string
	FirstRun bool
}

// ContentStore owns the per-site working files: the previous/latest snapshot
// pair, the per-site event log and the snapshots directory. Each site's files
// live in an isolated directory keyed by the site URL, so no cross-site state
// is shared.
type ContentStore struct {
	cfg    *config.StorageConfig
	logger zerolog.Logger
}

// NewContentStore creates a new ContentStore rooted at the configured data dir.
func NewContentStore(cfg *config.StorageConfig, logger zerolog.Logger) *ContentStore {
	return &ContentStore{
		cfg:    cfg,
		logger: logger.With().Str("component", "ContentStore").Logger(),
	}
}

// DataDir returns the root data directory.
func (s *ContentStore) DataDir() string {
	return s.cfg.DataDir
}

// SiteDir returns the directory holding a site's working files.
func (s *ContentStore) SiteDir(siteKey string) string {
	return filepath.Join(s.cfg.DataDir, filepath.FromSlash(siteKey))
}

// SiteDirExists reports whether the site's directory has been created.
func (s *ContentStore) SiteDirExists(siteKey string) bool {
	info, err := os.Stat(s.SiteDir(siteKey))
	return err == nil && info.IsDir()
}

// EnsureDataDir creates the root data directory if absent.
func (s *ContentStore) EnsureDataDir() error {
	if err := os.MkdirAll(s.cfg.DataDir, defaultDirMode); err != nil {
		return common.WrapErrorf(err, "could not create data directory '%s'", s.cfg.DataDir)
	}
	return nil
}

// EnsureSiteDir creates the site's directory if absent and returns its path.
func (s *ContentStore) EnsureSiteDir(siteKey string) (string, error) {
	dir := s.SiteDir(siteKey)
	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		return "", common.WrapErrorf(err, "could not create site directory '%s'", dir)
	}
	return dir, nil
}

// OldFilePath returns the path of the previous-content artifact.
func (s *ContentStore) OldFilePath(siteKey string) string {
	return filepath.Join(s.SiteDir(siteKey), oldFileName)
}

// NewFilePath returns the path of the latest-content artifact.
func (s *ContentStore) NewFilePath(siteKey string) string {
	return filepath.Join(s.SiteDir(siteKey), newFileName)
}

// SnapshotsDir returns the site's snapshots directory (not created here).
func (s *ContentStore) SnapshotsDir(siteKey string) string {
	return filepath.Join(s.SiteDir(siteKey), snapshotsDir)
}

// Update records newly fetched content for a site. If a latest artifact
// already exists from a prior run its content is copied into the previous
// artifact; otherwise both artifacts are created and the pair is marked as a
// first run. The new content always overwrites the latest artifact. Returned
// contents are read back from disk so the comparison step observes exactly
// what a subsequent run would read.
func (s *ContentStore) Update(siteKey, newText string) (SnapshotPair, error) {
	oldPath := s.OldFilePath(siteKey)
	newPath := s.NewFilePath(siteKey)

	pair := SnapshotPair{}

	if _, err := os.Stat(newPath); err == nil {
		previous, readErr := os.ReadFile(newPath)
		if readErr != nil {
			return pair, common.WrapErrorf(readErr, "could not read latest artifact '%s'", newPath)
		}
		if writeErr := os.WriteFile(oldPath, previous, defaultFileMode); writeErr != nil {
			return pair, common.WrapErrorf(writeErr, "could not update previous artifact '%s'", oldPath)
		}
	} else if os.IsNotExist(err) {
		// First non-error run: create both artifacts empty.
		if writeErr := os.WriteFile(oldPath, nil, defaultFileMode); writeErr != nil {
			return pair, common.WrapErrorf(writeErr, "could not create previous artifact '%s'", oldPath)
		}
		if writeErr := os.WriteFile(newPath, nil, defaultFileMode); writeErr != nil {
			return pair, common.WrapErrorf(writeErr, "could not create latest artifact '%s'", newPath)
		}
		pair.FirstRun = true
	} else {
		return pair, common.WrapErrorf(err, "could not stat latest artifact '%s'", newPath)
	}

	if err := os.WriteFile(newPath, []byte(newText), defaultFileMode); err != nil {
		return pair, common.WrapErrorf(err, "could not write latest artifact '%s'", newPath)
	}

	latest, err := os.ReadFile(newPath)
	if err != nil {
		return pair, common.WrapErrorf(err, "could not read back latest artifact '%s'", newPath)
	}
	pair.Latest = string(latest)

	if !pair.FirstRun {
		previous, err := os.ReadFile(oldPath)
		if err != nil {
			return pair, common.WrapErrorf(err, "could not read back previous artifact '%s'", oldPath)
		}
		pair.Previous = string(previous)
	}

	s.logger.Debug().
		Str("site_key", siteKey).
		Bool("first_run", pair.FirstRun).
		Int("latest_bytes", len(pair.Latest)).
		Msg("Updated snapshot pair")

	return pair, nil
}
