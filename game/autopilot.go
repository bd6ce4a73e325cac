package game

import "github.com/pthm-cable/gridsnake/engine"

// autopilot steers headless soak runs. It greedily walks toward the
// food while avoiding walls and its own body; it replaces the human
// input adapter only, the engine sees ordinary direction requests.
type autopilot struct{}

func newAutopilot() *autopilot {
	return &autopilot{}
}

// Next picks the direction request for the coming tick.
func (a *autopilot) Next(snap engine.Snapshot) engine.Direction {
	head := snap.Snake[0]

	occupied := make(map[engine.Position]struct{}, len(snap.Snake))
	for _, seg := range snap.Snake {
		occupied[seg] = struct{}{}
	}

	for _, d := range preferredOrder(head, snap.Food) {
		if d == snap.Dir.Opposite() {
			continue
		}
		p := head.Moved(d)
		if !p.InGrid() {
			continue
		}
		if _, hit := occupied[p]; hit {
			continue
		}
		return d
	}

	// Boxed in; keep heading and let the engine call it.
	return snap.Dir
}

// preferredOrder ranks the four directions by how much they close the
// distance to the food, longest axis first.
func preferredOrder(head, food engine.Position) [4]engine.Direction {
	dx := food.X - head.X
	dy := food.Y - head.Y

	horiz := engine.DirRight
	if dx < 0 {
		horiz = engine.DirLeft
	}
	vert := engine.DirDown
	if dy < 0 {
		vert = engine.DirUp
	}

	if abs(dx) >= abs(dy) {
		return [4]engine.Direction{horiz, vert, vert.Opposite(), horiz.Opposite()}
	}
	return [4]engine.Direction{vert, horiz, horiz.Opposite(), vert.Opposite()}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
