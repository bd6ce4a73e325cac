package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridsnake/engine"
)

// handleInput processes keyboard and touch input. Key presses and
// swipe gestures both collapse into single direction requests; only
// the latest request per tick interval matters.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW) {
		g.requestDirection(engine.DirUp)
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS) {
		g.requestDirection(engine.DirDown)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA) {
		g.requestDirection(engine.DirLeft)
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD) {
		g.requestDirection(engine.DirRight)
	}

	// Touch swipes map to the same requests as the arrow keys.
	switch {
	case rl.IsGestureDetected(rl.GestureSwipeUp):
		g.requestDirection(engine.DirUp)
	case rl.IsGestureDetected(rl.GestureSwipeDown):
		g.requestDirection(engine.DirDown)
	case rl.IsGestureDetected(rl.GestureSwipeLeft):
		g.requestDirection(engine.DirLeft)
	case rl.IsGestureDetected(rl.GestureSwipeRight):
		g.requestDirection(engine.DirRight)
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.state.TogglePause()
	}

	if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter) {
		g.restart()
	}
}
