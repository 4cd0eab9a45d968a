package common

import "time"

const (
	// LogTimestampLayout is the layout used for timestamped log lines.
	LogTimestampLayout = "02-01-06, 15:04"
	// FileTimestampLayout is a filesystem-safe layout used in artifact names.
	FileTimestampLayout = "02-01-06 T 15-04-05"
)

// FormatLogTimestamp formats a time for use in site/main log lines.
func FormatLogTimestamp(t time.Time) string {
	return t.Format(LogTimestampLayout)
}

// FormatFileTimestamp formats a time for use in snapshot and diff file names.
func FormatFileTimestamp(t time.Time) string {
	return t.Format(FileTimestampLayout)
}
