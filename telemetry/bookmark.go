package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkCoherenceSurge BookmarkType = "coherence_surge"
	BookmarkClumping       BookmarkType = "clumping"
	BookmarkDispersal      BookmarkType = "dispersal"
	BookmarkSettled        BookmarkType = "settled"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType
	Tick        int32
	Description string
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in the flow.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentOccupancyMin float64 // lowest occupancy since the last dispersal
	settledWindows     int     // consecutive windows with steady motion
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5 // minimum for settled detection
	}
	return &BookmarkDetector{
		history:            make([]WindowStats, historySize),
		historySize:        historySize,
		recentOccupancyMin: -1,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
// Windows that contain a reset or population change restart the baseline.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	if stats.Resets > 0 || stats.Added > 0 || stats.Removed > 0 {
		bd.clear()
		bd.addToHistory(stats)
		return nil
	}

	var bookmarks []Bookmark
	if bd.historyFull || bd.historyIdx > 0 {
		if b := bd.checkCoherenceSurge(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkClumping(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkDispersal(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkSettled(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)

	if bd.recentOccupancyMin < 0 || stats.DensityOccupancy < bd.recentOccupancyMin {
		bd.recentOccupancyMin = stats.DensityOccupancy
	}

	return bookmarks
}

func (bd *BookmarkDetector) clear() {
	clear(bd.history)
	bd.historyIdx = 0
	bd.historyFull = false
	bd.recentOccupancyMin = -1
	bd.settledWindows = 0
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// getHistory returns the stored windows, oldest first.
func (bd *BookmarkDetector) getHistory() []WindowStats {
	if !bd.historyFull {
		return bd.history[:bd.historyIdx]
	}
	out := make([]WindowStats, 0, bd.historySize)
	out = append(out, bd.history[bd.historyIdx:]...)
	return append(out, bd.history[:bd.historyIdx]...)
}

func (bd *BookmarkDetector) checkCoherenceSurge(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.Coherence
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.Coherence > avg*2.0 && stats.Coherence > 0.3 {
		return &Bookmark{
			Type:        BookmarkCoherenceSurge,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Coherence %.2f is %.1fx average (%.2f)", stats.Coherence, stats.Coherence/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkClumping(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += float64(h.DensityMax)
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	peak := float64(stats.DensityMax)
	if peak > avg*2.0 && stats.DensityMax >= 10 {
		return &Bookmark{
			Type:        BookmarkClumping,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Densest cell holds %d particles, %.1fx average (%.1f)", stats.DensityMax, peak/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkDispersal(stats WindowStats) *Bookmark {
	if bd.recentOccupancyMin <= 0 {
		return nil
	}

	rise := stats.DensityOccupancy/bd.recentOccupancyMin - 1
	if rise > 0.30 && stats.DensityOccupancy-bd.recentOccupancyMin > 0.05 {
		oldMin := bd.recentOccupancyMin
		bd.recentOccupancyMin = stats.DensityOccupancy

		return &Bookmark{
			Type:        BookmarkDispersal,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Occupancy rose %.0f%% from %.2f to %.2f", rise*100, oldMin, stats.DensityOccupancy),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkSettled(stats WindowStats) *Bookmark {
	if stats.Population == 0 {
		bd.settledWindows = 0
		return nil
	}

	history := bd.getHistory()
	if len(history) < 4 {
		return nil
	}
	recent := history[len(history)-4:]

	var speedSum, cohSum float64
	for _, h := range recent {
		speedSum += h.SpeedMean
		cohSum += h.Coherence
	}
	speedMean := speedSum / 4
	cohMean := cohSum / 4

	var speedVar, cohVar float64
	for _, h := range recent {
		ds := h.SpeedMean - speedMean
		dc := h.Coherence - cohMean
		speedVar += ds * ds
		cohVar += dc * dc
	}
	speedVar /= 4
	cohVar /= 4

	// CV^2 < 0.01 means CV < 10%
	steady := speedMean > 0 && speedVar/(speedMean*speedMean) < 0.01 && cohVar < 0.0025
	if steady {
		bd.settledWindows++
	} else {
		bd.settledWindows = 0
	}

	if bd.settledWindows == 5 { // trigger exactly once per settled stretch
		return &Bookmark{
			Type:        BookmarkSettled,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Motion steady at speed %.2f, coherence %.2f over 5+ windows", speedMean, cohMean),
		}
	}
	return nil
}
