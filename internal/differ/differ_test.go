package differ

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_Identical(t *testing.T) {
	cd := NewContentDiffer(zerolog.Nop())

	result := cd.Diff("User-agent: *\nDisallow: /\n", "User-agent: *\nDisallow: /\n")

	assert.True(t, result.Identical)
	assert.Equal(t, 0, result.LinesAdded)
	assert.Equal(t, 0, result.LinesRemoved)
	require.Len(t, result.Rows, 2)
	for _, row := range result.Rows {
		assert.Equal(t, RowEqual, row.Kind)
		assert.Equal(t, row.Previous, row.New)
	}
	assert.Equal(t, "No textual changes detected.", result.Summary())
}

func TestDiff_ChangedLine(t *testing.T) {
	cd := NewContentDiffer(zerolog.Nop())

	previous := "User-agent: *\nDisallow: /private/\nAllow: /\n"
	latest := "User-agent: *\nDisallow: /secret/\nAllow: /\n"

	result := cd.Diff(previous, latest)

	assert.False(t, result.Identical)
	assert.Equal(t, 1, result.LinesAdded)
	assert.Equal(t, 1, result.LinesRemoved)

	var changed []Row
	for _, row := range result.Rows {
		if row.Kind == RowChanged {
			changed = append(changed, row)
		}
	}
	require.Len(t, changed, 1)
	assert.Equal(t, "Disallow: /private/", changed[0].Previous)
	assert.Equal(t, "Disallow: /secret/", changed[0].New)
}

func TestDiff_AddedLines(t *testing.T) {
	cd := NewContentDiffer(zerolog.Nop())

	previous := "User-agent: *\n"
	latest := "User-agent: *\nDisallow: /admin/\nDisallow: /tmp/\n"

	result := cd.Diff(previous, latest)

	assert.Equal(t, 2, result.LinesAdded)
	assert.Equal(t, 0, result.LinesRemoved)

	var added []Row
	for _, row := range result.Rows {
		if row.Kind == RowAdded {
			added = append(added, row)
		}
	}
	require.Len(t, added, 2)
	assert.Empty(t, added[0].Previous)
	assert.Equal(t, "Disallow: /admin/", added[0].New)
}

func TestDiff_RemovedLines(t *testing.T) {
	cd := NewContentDiffer(zerolog.Nop())

	previous := "User-agent: *\nDisallow: /admin/\n"
	latest := "User-agent: *\n"

	result := cd.Diff(previous, latest)

	assert.Equal(t, 0, result.LinesAdded)
	assert.Equal(t, 1, result.LinesRemoved)

	var removed []Row
	for _, row := range result.Rows {
		if row.Kind == RowRemoved {
			removed = append(removed, row)
		}
	}
	require.Len(t, removed, 1)
	assert.Equal(t, "Disallow: /admin/", removed[0].Previous)
	assert.Empty(t, removed[0].New)
}

func TestDiff_EmptyToContent(t *testing.T) {
	cd := NewContentDiffer(zerolog.Nop())

	result := cd.Diff("", "User-agent: *\n")

	assert.False(t, result.Identical)
	assert.Equal(t, 1, result.LinesAdded)
	assert.Equal(t, "1 insertions (+), 0 deletions (-).", result.Summary())
}
