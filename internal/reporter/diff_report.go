package reporter

import (
	"html/template"
	"os"
	"path/filepath"
	"time"

	"robotswatch/internal/common"
	"robotswatch/internal/differ"
)

// diffRowView is one rendered row of the side-by-side comparison table.
type diffRowView struct {
	Class    string
	Previous string
	New      string
}

// diffPageData feeds the diff report template.
type diffPageData struct {
	SiteURL     string
	GeneratedAt string
	Summary     string
	Rows        []diffRowView
}

const diffReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>robots.txt diff — {{.SiteURL}}</title>
<style>
body { font-family: monospace; margin: 1.5em; }
h1 { font-size: 1.2em; font-family: sans-serif; }
p.meta { color: #555; font-family: sans-serif; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 2px 8px; text-align: left; vertical-align: top; white-space: pre-wrap; }
th { background: #f0f0f0; font-family: sans-serif; }
tr.changed td { background: #fff3cd; }
tr.added td.new { background: #e6ffe6; }
tr.removed td.previous { background: #f8d7da; }
</style>
</head>
<body>
<h1>robots.txt change — {{.SiteURL}}</h1>
<p class="meta">Generated {{.GeneratedAt}}. {{.Summary}}</p>
<table>
<tr><th>Previous</th><th>New</th></tr>
{{range .Rows}}<tr class="{{.Class}}"><td class="previous">{{.Previous}}</td><td class="new">{{.New}}</td></tr>
{{end}}</table>
</body>
</html>
`

var diffTemplate = template.Must(template.New("diff").Parse(diffReportTemplate))

// createDiffFile renders a side-by-side HTML comparison of the previous and
// latest content into the site's snapshots directory and returns its path.
func (r *Reporter) createDiffFile(siteKey, siteURL string, result *differ.Result, timestamp time.Time) (string, error) {
	dir := r.store.SnapshotsDir(siteKey)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", common.WrapErrorf(err, "could not create snapshots directory '%s'", dir)
	}

	rows := make([]diffRowView, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, diffRowView{
			Class:    rowClass(row.Kind),
			Previous: row.Previous,
			New:      row.New,
		})
	}

	data := diffPageData{
		SiteURL:     siteURL,
		GeneratedAt: common.FormatLogTimestamp(timestamp),
		Summary:     result.Summary(),
		Rows:        rows,
	}

	path := filepath.Join(dir, common.FormatFileTimestamp(timestamp)+" Diff.html")
	f, err := os.Create(path)
	if err != nil {
		return "", common.WrapErrorf(err, "could not create diff file '%s'", path)
	}
	defer f.Close()

	if err := diffTemplate.Execute(f, data); err != nil {
		return "", common.WrapErrorf(err, "could not render diff file '%s'", path)
	}

	r.logger.Debug().Str("path", path).Msg("Diff file created")
	return path, nil
}

// rowClass maps a diff row kind to its CSS class.
func rowClass(kind differ.RowKind) string {
	switch kind {
	case differ.RowChanged:
		return "changed"
	case differ.RowAdded:
		return "added"
	case differ.RowRemoved:
		return "removed"
	default:
		return "equal"
	}
}
