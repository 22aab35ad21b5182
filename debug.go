package swipemenu

import "time"

// frameStats holds per-frame timing metrics.
// Only populated when Config.Debug is true.
type frameStats struct {
	inputTime    time.Duration
	poseTime     time.Duration
	hitTime      time.Duration
	eventCount   int
	hits         int
	scrollOffset float64
}

// debugLog writes the frame's stats to the menu logger. Frames without input
// or animation are skipped to keep the log readable.
func (m *Menu) debugLog(stats frameStats) {
	if stats.eventCount == 0 && !m.ctrl.Animating() {
		return
	}
	m.log.Debug("frame",
		"input", stats.inputTime,
		"pose", stats.poseTime,
		"hit", stats.hitTime,
		"total", stats.inputTime+stats.poseTime+stats.hitTime,
		"events", stats.eventCount,
		"hits", stats.hits,
		"scrollOffset", stats.scrollOffset)
}
