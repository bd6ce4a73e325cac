// Package engine implements the snake game state and its per-tick
// transition. All functions are synchronous and free of side effects
// beyond the state they are handed; scheduling, input capture, and
// rendering live in the game package.
package engine

import (
	"math/rand"
	"time"
)

// GridSize is the fixed board dimension. Every position satisfies
// 0 <= X,Y < GridSize.
const GridSize = 20

// Position is a cell on the grid.
type Position struct {
	X, Y int
}

// InGrid reports whether p lies inside the board.
func (p Position) InGrid() bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// Moved returns the neighboring cell one step in direction d.
func (p Position) Moved(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Rules holds the gameplay tunables. They default to the classic
// values and are surfaced through the config package.
type Rules struct {
	StartInterval time.Duration // tick period at game start
	MinInterval   time.Duration // speed ramp floor
	SpeedStep     time.Duration // interval reduction per food eaten
	FoodScore     int           // score awarded per food eaten
}

// DefaultRules returns the standard gameplay tunables.
func DefaultRules() Rules {
	return Rules{
		StartInterval: 150 * time.Millisecond,
		MinInterval:   50 * time.Millisecond,
		SpeedStep:     2 * time.Millisecond,
		FoodScore:     10,
	}
}

// State is the complete game state. It is owned by a single
// controller and mutated only through the methods in this package.
type State struct {
	Rules Rules

	Snake []Position // head-first body, length >= 1, no duplicate cells
	Food  Position
	Dir   Direction

	Score    int
	Interval time.Duration // current tick period, ramps down to Rules.MinInterval
	Tick     uint64

	Paused bool
	Over   bool // wall or self collision ended the run
	Won    bool // snake filled the grid; food placement impossible
}

// New creates the initial paused state: a single segment in the
// middle of the board, heading right, with food already placed.
func New(rules Rules, rng *rand.Rand) *State {
	s := &State{
		Rules:    rules,
		Snake:    []Position{{X: GridSize / 2, Y: GridSize / 2}},
		Dir:      DirRight,
		Interval: rules.StartInterval,
		Paused:   true,
	}
	s.Food, _ = PlaceFood(rng, s.Snake)
	return s
}

// Restart returns a fresh state that is immediately running. Allowed
// at any time, including mid game over; nothing carries over.
func Restart(rules Rules, rng *rand.Rand) *State {
	s := New(rules, rng)
	s.Paused = false
	return s
}

// Running reports whether ticks should currently be scheduled.
func (s *State) Running() bool {
	return !s.Paused && !s.Over && !s.Won
}

// Snapshot is a read-only copy of the state handed to the renderer.
type Snapshot struct {
	Snake    []Position
	Food     Position
	Dir      Direction
	Score    int
	Interval time.Duration
	Tick     uint64
	Paused   bool
	Over     bool
	Won      bool
}

// Snapshot copies the current state. The returned body slice is
// detached from the live one.
func (s *State) Snapshot() Snapshot {
	body := make([]Position, len(s.Snake))
	copy(body, s.Snake)
	return Snapshot{
		Snake:    body,
		Food:     s.Food,
		Dir:      s.Dir,
		Score:    s.Score,
		Interval: s.Interval,
		Tick:     s.Tick,
		Paused:   s.Paused,
		Over:     s.Over,
		Won:      s.Won,
	}
}
