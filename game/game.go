// Package game owns the running snake session: it schedules engine
// ticks from frame time, captures raylib input, renders the board, and
// feeds telemetry.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridsnake/config"
	"github.com/pthm-cable/gridsnake/engine"
	"github.com/pthm-cable/gridsnake/telemetry"
)

// Options configures a game session.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
}

// Game holds the session state and its adapters.
type Game struct {
	rules engine.Rules
	state *engine.State
	rng   *rand.Rand

	// Most recent direction request; applied at the start of the next
	// tick, last writer wins.
	pendingDir engine.Direction
	hasPending bool

	// Frame-time accumulator driving the tick scheduler.
	accum time.Duration

	// Total ticks across restarts (state.Tick resets on restart).
	totalTicks uint64

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	pilot *autopilot // headless soak runs only
}

// NewGame creates a session from the loaded config and options.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()
	rules := cfg.Rules()
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		rules:     rules,
		rng:       rng,
		collector: telemetry.NewCollector(cfg.Telemetry.WindowTicks),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:  opts.LogStats,
	}

	if opts.Headless {
		// Soak runs skip the paused intro and drive themselves.
		g.state = engine.Restart(rules, rng)
		g.pilot = newAutopilot()
	} else {
		g.state = engine.New(rules, rng)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = om
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// Update runs one frame in graphical mode: capture input, then fire
// as many ticks as the accumulated frame time covers. The interval is
// re-read after every tick so the speed ramp takes effect with the
// next scheduled one.
func (g *Game) Update() {
	g.handleInput()

	if !g.state.Running() {
		g.accum = 0
		return
	}

	g.accum += time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	for g.state.Running() && g.accum >= g.state.Interval {
		g.accum -= g.state.Interval
		g.step()
	}
}

// UpdateHeadless runs one tick in headless mode, steering with the
// autopilot and restarting finished runs so soaks keep going.
func (g *Game) UpdateHeadless() {
	if !g.state.Running() {
		g.restart()
		return
	}

	g.requestDirection(g.pilot.Next(g.state.Snapshot()))
	g.step()
}

// step advances the engine by exactly one tick and records telemetry.
func (g *Game) step() {
	if g.hasPending {
		before := g.state.Dir
		g.state.ChangeDirection(g.pendingDir)
		if g.state.Dir != before {
			g.collector.RecordTurn()
		}
		g.hasPending = false
	}

	prevScore := g.state.Score

	g.perf.StartTick()
	g.state.Advance(g.rng)
	g.perf.EndTick()
	g.totalTicks++

	if g.state.Score > prevScore {
		g.collector.RecordApple()
	}
	if g.state.Over {
		g.collector.RecordGameOver()
		slog.Info("game_over",
			"score", g.state.Score,
			"length", len(g.state.Snake),
			"tick", g.state.Tick,
		)
	}
	if g.state.Won {
		g.collector.RecordWin()
		slog.Info("grid_full_win",
			"score", g.state.Score,
			"tick", g.state.Tick,
		)
	}

	g.flushTelemetry()
}

// flushTelemetry closes a stats window when due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.totalTicks) {
		return
	}

	stats := g.collector.Flush(g.totalTicks, g.state.Score, len(g.state.Snake))
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("telemetry write failed", "error", err)
	}
	if err := g.output.WritePerf(perfStats, g.totalTicks); err != nil {
		slog.Error("perf write failed", "error", err)
	}
}

// requestDirection stores a direction request for the next tick.
func (g *Game) requestDirection(d engine.Direction) {
	g.pendingDir = d
	g.hasPending = true
}

// restart reinitializes the session wholesale. Permitted at any time,
// including mid game over.
func (g *Game) restart() {
	g.state = engine.Restart(g.rules, g.rng)
	g.accum = 0
	g.hasPending = false
	g.collector.RecordRestart()
	slog.Info("restart")
}

// Tick returns the total tick count across restarts.
func (g *Game) Tick() uint64 {
	return g.totalTicks
}

// Close flushes telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}
