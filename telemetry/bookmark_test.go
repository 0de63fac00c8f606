package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_CoherenceSurge(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Coherence: 0.1})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, Coherence: 0.5})
	assert.True(t, hasBookmark(bookmarks, BookmarkCoherenceSurge), "expected coherence_surge bookmark")
}

func TestBookmarkDetector_Clumping(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), DensityMax: 5})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, DensityMax: 20})
	assert.True(t, hasBookmark(bookmarks, BookmarkClumping), "expected clumping bookmark")
}

func TestBookmarkDetector_Dispersal(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), DensityOccupancy: 0.3})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, DensityOccupancy: 0.5})
	assert.True(t, hasBookmark(bookmarks, BookmarkDispersal), "expected dispersal bookmark")

	// Baseline moved up; the same occupancy again is not news.
	bookmarks = bd.Check(WindowStats{WindowEndTick: 3600, DensityOccupancy: 0.5})
	assert.False(t, hasBookmark(bookmarks, BookmarkDispersal))
}

func TestBookmarkDetector_SettledTriggersOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	first := -1
	count := 0
	for i := 0; i < 20; i++ {
		bookmarks := bd.Check(WindowStats{
			WindowEndTick: int32(i * 600),
			Population:    100,
			SpeedMean:     2,
			Coherence:     0.4,
		})
		if hasBookmark(bookmarks, BookmarkSettled) {
			count++
			if first < 0 {
				first = i
			}
		}
	}

	assert.Equal(t, 1, count)
	assert.Equal(t, 8, first)
}

func TestBookmarkDetector_NoBookmarksWhenSteady(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 6; i++ {
		bookmarks := bd.Check(WindowStats{
			WindowEndTick:    int32(i * 600),
			Coherence:        0.2,
			DensityMax:       8,
			DensityOccupancy: 0.4,
		})
		assert.Empty(t, bookmarks)
	}
}

func TestBookmarkDetector_ResetRestartsBaseline(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Coherence: 0.1})
	}

	assert.Empty(t, bd.Check(WindowStats{WindowEndTick: 3000, Coherence: 0.1, Resets: 1}))
	assert.Empty(t, bd.Check(WindowStats{WindowEndTick: 3600, Coherence: 0.6}),
		"a single window after a reset is not enough history")
}

func TestBookmarkDetector_MinimumHistory(t *testing.T) {
	bd := NewBookmarkDetector(1)
	assert.Equal(t, 5, bd.historySize)
}
