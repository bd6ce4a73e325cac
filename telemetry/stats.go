package telemetry

import "log/slog"

// WindowStats holds aggregated statistics for one tick window.
type WindowStats struct {
	WindowStart uint64 `csv:"-"`
	WindowEnd   uint64 `csv:"window_end"`

	// Sampled at window end
	Score       int `csv:"score"`
	SnakeLength int `csv:"snake_length"`

	// Events during the window
	Apples    int `csv:"apples"`
	Turns     int `csv:"turns"`
	GameOvers int `csv:"game_overs"`
	Wins      int `csv:"wins"`
	Restarts  int `csv:"restarts"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStart),
		slog.Uint64("window_end", s.WindowEnd),
		slog.Int("score", s.Score),
		slog.Int("snake_length", s.SnakeLength),
		slog.Int("apples", s.Apples),
		slog.Int("turns", s.Turns),
		slog.Int("game_overs", s.GameOvers),
		slog.Int("wins", s.Wins),
		slog.Int("restarts", s.Restarts),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEnd,
		"score", s.Score,
		"snake_length", s.SnakeLength,
		"apples", s.Apples,
		"turns", s.Turns,
		"game_overs", s.GameOvers,
		"wins", s.Wins,
		"restarts", s.Restarts,
	)
}
