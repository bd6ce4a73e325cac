// Package telemetry provides session stats windows, tick performance
// tracking, and CSV output for soak runs.
package telemetry

// Collector accumulates game events within tick windows and produces
// WindowStats.
type Collector struct {
	windowTicks     uint64
	windowStartTick uint64

	// Event counters for the current window
	apples    int
	turns     int
	gameOvers int
	wins      int
	restarts  int
}

// NewCollector creates a stats collector flushing every windowTicks
// engine ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 100
	}
	return &Collector{windowTicks: uint64(windowTicks)}
}

// RecordApple records a food consumption.
func (c *Collector) RecordApple() {
	c.apples++
}

// RecordTurn records an accepted direction change.
func (c *Collector) RecordTurn() {
	c.turns++
}

// RecordGameOver records a fatal collision.
func (c *Collector) RecordGameOver() {
	c.gameOvers++
}

// RecordWin records a completed board.
func (c *Collector) RecordWin() {
	c.wins++
}

// RecordRestart records a restart request.
func (c *Collector) RecordRestart() {
	c.restarts++
}

// ShouldFlush reports whether enough ticks have passed to close the
// current window.
func (c *Collector) ShouldFlush(currentTick uint64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats for the closing window and resets the
// counters. Score and body length are sampled at window end by the
// caller.
func (c *Collector) Flush(currentTick uint64, score, snakeLength int) WindowStats {
	stats := WindowStats{
		WindowStart: c.windowStartTick,
		WindowEnd:   currentTick,
		Score:       score,
		SnakeLength: snakeLength,
		Apples:      c.apples,
		Turns:       c.turns,
		GameOvers:   c.gameOvers,
		Wins:        c.wins,
		Restarts:    c.restarts,
	}

	c.windowStartTick = currentTick
	c.apples = 0
	c.turns = 0
	c.gameOvers = 0
	c.wins = 0
	c.restarts = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() uint64 {
	return c.windowTicks
}
