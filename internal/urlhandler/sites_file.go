package urlhandler

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"robotswatch/internal/common"
	"robotswatch/internal/models"
)

// LoadSites reads the monitored sites CSV: a header row (skipped) followed by
// one row per site with url, name and email columns. Malformed rows are
// reported in rowErrs and skipped; only failures to read the file itself are
// returned as err.
func LoadSites(filePath string, logger zerolog.Logger) (sites []models.Site, rowErrs []error, err error) {
	fileLogger := logger.With().Str("file", filePath).Logger()

	f, err := os.Open(filePath)
	if err != nil {
		fileLogger.Error().Err(err).Msg("Could not open sites file")
		return nil, nil, common.WrapErrorf(err, "could not open sites file '%s'", filePath)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // row length validated below so bad rows can be skipped

	records, err := reader.ReadAll()
	if err != nil {
		fileLogger.Error().Err(err).Msg("Could not parse sites file as CSV")
		return nil, nil, common.WrapErrorf(err, "could not parse sites file '%s'", filePath)
	}

	for i, row := range records {
		if i == 0 {
			continue // header row labels
		}
		if len(row) < 3 {
			rowErr := common.NewError("could not extract row %d from CSV '%s': expected 3 columns, got %d", i, filePath, len(row))
			fileLogger.Error().Int("row", i).Int("columns", len(row)).Msg("Skipping malformed sites row")
			rowErrs = append(rowErrs, rowErr)
			continue
		}
		sites = append(sites, models.Site{
			URL:   strings.ToLower(strings.TrimSpace(row[0])),
			Name:  strings.TrimSpace(row[1]),
			Email: strings.TrimSpace(row[2]),
		})
	}

	fileLogger.Info().Int("sites", len(sites)).Int("skipped_rows", len(rowErrs)).Msg("Loaded monitored sites")
	return sites, rowErrs, nil
}
