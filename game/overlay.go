package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridsnake/engine"
)

// drawOverlays renders the HUD buttons and, on a finished or paused
// game, the centered overlay panel. raygui is immediate mode, so
// button clicks are handled right here.
func (g *Game) drawOverlays(snap engine.Snapshot, l boardLayout) {
	screenW := float32(rl.GetScreenWidth())

	// Always-visible controls in the HUD corner.
	pauseLabel := "Pause"
	if snap.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.NewRectangle(screenW-180, 10, 80, 28), pauseLabel) {
		g.state.TogglePause()
	}
	if gui.Button(rl.NewRectangle(screenW-92, 10, 80, 28), "Restart") {
		g.restart()
	}

	switch {
	case snap.Over:
		g.drawEndPanel(l, "GAME OVER", fmt.Sprintf("Final score: %d", snap.Score))
	case snap.Won:
		g.drawEndPanel(l, "YOU WIN", fmt.Sprintf("Board complete - score %d", snap.Score))
	case snap.Paused:
		msg := "Press SPACE or swipe to start"
		w := rl.MeasureText(msg, 20)
		rl.DrawText(msg, l.offsetX+(l.width-w)/2, l.offsetY+l.height/2-10, 20, rl.RayWhite)
	}
}

// drawEndPanel dims the board and offers a restart.
func (g *Game) drawEndPanel(l boardLayout, title, detail string) {
	rl.DrawRectangle(l.offsetX, l.offsetY, l.width, l.height, rl.Fade(rl.Black, 0.65))

	cx := l.offsetX + l.width/2
	cy := l.offsetY + l.height/2

	tw := rl.MeasureText(title, 40)
	rl.DrawText(title, cx-tw/2, cy-60, 40, rl.RayWhite)

	dw := rl.MeasureText(detail, 20)
	rl.DrawText(detail, cx-dw/2, cy-10, 20, rl.LightGray)

	if gui.Button(rl.NewRectangle(float32(cx)-60, float32(cy)+30, 120, 32), "Play again") {
		g.restart()
	}
}
