package engine

import (
	"math/rand"
	"testing"
	"time"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// newTestState builds a running state with the given body and food,
// bypassing New so scenarios can pin every cell.
func newTestState(snake []Position, dir Direction, food Position) *State {
	rules := DefaultRules()
	return &State{
		Rules:    rules,
		Snake:    snake,
		Dir:      dir,
		Food:     food,
		Interval: rules.StartInterval,
	}
}

func TestAdvanceMovesWithoutGrowth(t *testing.T) {
	s := newTestState([]Position{{5, 5}, {4, 5}, {3, 5}}, DirRight, Position{15, 15})

	s.Advance(testRNG())

	if s.Over {
		t.Fatal("open-field move flagged game over")
	}
	if len(s.Snake) != 3 {
		t.Fatalf("body length after plain move = %d, want 3", len(s.Snake))
	}
	want := []Position{{6, 5}, {5, 5}, {4, 5}}
	for i, p := range want {
		if s.Snake[i] != p {
			t.Errorf("segment %d = %v, want %v", i, s.Snake[i], p)
		}
	}
	if s.Score != 0 {
		t.Errorf("score changed on plain move: %d", s.Score)
	}
	if s.Interval != s.Rules.StartInterval {
		t.Errorf("interval changed on plain move: %v", s.Interval)
	}
}

func TestAdvanceEatsFood(t *testing.T) {
	s := newTestState([]Position{{1, 1}}, DirRight, Position{2, 1})

	s.Advance(testRNG())

	if s.Over || s.Won {
		t.Fatalf("eating tick ended the game: over=%v won=%v", s.Over, s.Won)
	}
	if s.Snake[0] != (Position{2, 1}) {
		t.Fatalf("head = %v, want {2 1}", s.Snake[0])
	}
	if len(s.Snake) != 2 {
		t.Fatalf("body length after eating = %d, want 2", len(s.Snake))
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
	if s.Interval != 148*time.Millisecond {
		t.Errorf("interval = %v, want 148ms", s.Interval)
	}
	if s.Food == (Position{2, 1}) {
		t.Error("food not respawned after being eaten")
	}
	for _, seg := range s.Snake {
		if s.Food == seg {
			t.Errorf("respawned food %v sits on the snake", s.Food)
		}
	}
}

func TestSpeedRampFloor(t *testing.T) {
	s := newTestState([]Position{{1, 1}}, DirRight, Position{2, 1})
	s.Interval = s.Rules.MinInterval

	s.Advance(testRNG())

	if s.Interval != s.Rules.MinInterval {
		t.Errorf("interval dropped below floor: %v", s.Interval)
	}

	// One step above the floor clamps rather than undershoots.
	s2 := newTestState([]Position{{1, 1}}, DirRight, Position{2, 1})
	s2.Interval = s2.Rules.MinInterval + time.Millisecond

	s2.Advance(testRNG())

	if s2.Interval != s2.Rules.MinInterval {
		t.Errorf("interval = %v, want clamp to %v", s2.Interval, s2.Rules.MinInterval)
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name  string
		snake []Position
		dir   Direction
	}{
		{"left edge", []Position{{0, 5}, {1, 5}}, DirLeft},
		{"right edge", []Position{{19, 5}, {18, 5}}, DirRight},
		{"top edge", []Position{{5, 0}, {5, 1}}, DirUp},
		{"bottom edge", []Position{{5, 19}, {5, 18}}, DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := make([]Position, len(tt.snake))
			copy(before, tt.snake)

			s := newTestState(tt.snake, tt.dir, Position{10, 10})
			s.Advance(testRNG())

			if !s.Over {
				t.Fatal("wall hit did not end the game")
			}
			if len(s.Snake) != len(before) {
				t.Fatalf("body length changed on fatal tick: %d", len(s.Snake))
			}
			for i, p := range before {
				if s.Snake[i] != p {
					t.Errorf("segment %d moved on fatal tick: %v, want %v", i, s.Snake[i], p)
				}
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	// Head at {5,5}, body occupying {6,5}; moving right revisits it.
	body := []Position{{5, 5}, {6, 5}, {6, 6}}
	s := newTestState(body, DirRight, Position{10, 10})

	s.Advance(testRNG())

	if !s.Over {
		t.Fatal("self collision did not end the game")
	}
	want := []Position{{5, 5}, {6, 5}, {6, 6}}
	for i, p := range want {
		if s.Snake[i] != p {
			t.Errorf("segment %d = %v, want %v", i, s.Snake[i], p)
		}
	}
}

func TestTailCellIsFatal(t *testing.T) {
	// The body has not moved when the new head is checked, so the
	// current tail cell is a collision even though it is about to
	// vacate.
	body := []Position{{5, 5}, {5, 6}, {6, 6}, {6, 5}}
	s := newTestState(body, DirRight, Position{10, 10})

	s.Advance(testRNG())

	if !s.Over {
		t.Fatal("moving onto the current tail cell did not end the game")
	}
}

func TestChangeDirectionRejectsReversal(t *testing.T) {
	tests := []struct {
		current   Direction
		requested Direction
		want      Direction
	}{
		{DirUp, DirDown, DirUp},
		{DirDown, DirUp, DirDown},
		{DirLeft, DirRight, DirLeft},
		{DirRight, DirLeft, DirRight},
		{DirRight, DirUp, DirUp},
		{DirRight, DirDown, DirDown},
		{DirUp, DirLeft, DirLeft},
		{DirRight, DirRight, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.current.String()+"->"+tt.requested.String(), func(t *testing.T) {
			s := newTestState([]Position{{5, 5}}, tt.current, Position{10, 10})
			s.ChangeDirection(tt.requested)
			if s.Dir != tt.want {
				t.Errorf("direction = %v, want %v", s.Dir, tt.want)
			}
		})
	}
}

func TestTogglePause(t *testing.T) {
	s := New(DefaultRules(), testRNG())
	if !s.Paused {
		t.Fatal("new game should start paused")
	}

	before := s.Snapshot()
	s.TogglePause()

	if s.Paused {
		t.Error("toggle did not unpause")
	}
	if s.Score != before.Score || len(s.Snake) != len(before.Snake) || s.Food != before.Food {
		t.Error("toggle touched state beyond the pause flag")
	}

	s.TogglePause()
	if !s.Paused {
		t.Error("second toggle did not re-pause")
	}
}

func TestRestart(t *testing.T) {
	rng := testRNG()
	s := New(DefaultRules(), rng)
	s.Paused = false

	// Play a little so restart has something to wipe.
	for i := 0; i < 3; i++ {
		s.Advance(rng)
	}
	s.Score = 70
	s.Over = true

	s = Restart(DefaultRules(), rng)

	if len(s.Snake) != 1 || s.Snake[0] != (Position{10, 10}) {
		t.Errorf("snake = %v, want single segment at {10 10}", s.Snake)
	}
	if s.Dir != DirRight {
		t.Errorf("direction = %v, want right", s.Dir)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
	if s.Interval != 150*time.Millisecond {
		t.Errorf("interval = %v, want 150ms", s.Interval)
	}
	if s.Paused {
		t.Error("restarted game should be running")
	}
	if s.Over || s.Won {
		t.Error("restarted game carries a terminal flag")
	}
	if !s.Food.InGrid() || s.Food == s.Snake[0] {
		t.Errorf("food %v invalid after restart", s.Food)
	}
}

func TestWinOnFullGrid(t *testing.T) {
	// Snake covers every cell except {0,0}, which holds the food.
	// Head sits at {1,0} so one left move completes the board.
	snake := make([]Position, 0, GridSize*GridSize-1)
	snake = append(snake, Position{1, 0})
	for x := 2; x < GridSize; x++ {
		snake = append(snake, Position{x, 0})
	}
	for y := 1; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			snake = append(snake, Position{x, y})
		}
	}

	s := newTestState(snake, DirLeft, Position{0, 0})
	s.Advance(testRNG())

	if !s.Won {
		t.Fatal("filling the grid did not mark a win")
	}
	if s.Over {
		t.Error("win also flagged as collision game over")
	}
	if len(s.Snake) != GridSize*GridSize {
		t.Errorf("body length = %d, want %d", len(s.Snake), GridSize*GridSize)
	}
}

func TestSnapshotDetached(t *testing.T) {
	s := New(DefaultRules(), testRNG())
	snap := s.Snapshot()

	snap.Snake[0] = Position{0, 0}
	if s.Snake[0] == (Position{0, 0}) {
		t.Error("snapshot body aliases live state")
	}
}
