package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"robotswatch/internal/common"
)

const (
	mainLogName = "main_log.txt"
	siteLogName = "log.txt"
)

// MainLogPath returns the path of the global append-only log.
func (s *ContentStore) MainLogPath() string {
	return filepath.Join(s.cfg.DataDir, mainLogName)
}

// SiteLogPath returns the path of a site's event log.
func (s *ContentStore) SiteLogPath(siteKey string) string {
	return filepath.Join(s.SiteDir(siteKey), siteLogName)
}

// AppendMainLog appends one timestamped line to the global log. The data
// directory is created on demand so run-level events can be recorded even
// before the first check.
func (s *ContentStore) AppendMainLog(message string) error {
	if err := s.EnsureDataDir(); err != nil {
		return err
	}
	return appendLogLine(s.MainLogPath(), message)
}

// AppendSiteLog appends one timestamped line to a site's event log. The
// site directory must already exist.
func (s *ContentStore) AppendSiteLog(siteKey, message string) error {
	return appendLogLine(s.SiteLogPath(siteKey), message)
}

// appendLogLine appends "timestamp: message" to the given log file, creating
// it if absent.
func appendLogLine(path, message string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultFileMode)
	if err != nil {
		return common.WrapErrorf(err, "could not open log file '%s'", path)
	}
	defer f.Close()

	line := fmt.Sprintf("%s: %s\n", common.FormatLogTimestamp(time.Now()), message)
	if _, err := f.WriteString(line); err != nil {
		return common.WrapErrorf(err, "could not append to log file '%s'", path)
	}
	return nil
}
