package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridsnake/config"
	"github.com/pthm-cable/gridsnake/engine"
)

const (
	hudHeight     = 48
	borderPadding = 10
)

// boardLayout holds the pixel geometry of the grid for one frame.
type boardLayout struct {
	cellSize int32
	offsetX  int32
	offsetY  int32
	width    int32
	height   int32
}

// layout fits the fixed grid into the current window below the HUD.
func layout() boardLayout {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	availW := screenW - 2*borderPadding
	availH := screenH - hudHeight - 2*borderPadding

	cell := availW / engine.GridSize
	if h := availH / engine.GridSize; h < cell {
		cell = h
	}

	l := boardLayout{cellSize: cell}
	l.width = cell * engine.GridSize
	l.height = cell * engine.GridSize
	l.offsetX = (screenW - l.width) / 2
	l.offsetY = hudHeight + (screenH-hudHeight-l.height)/2
	return l
}

// cellRect returns the pixel rectangle of a grid cell.
func (l boardLayout) cellRect(p engine.Position) (x, y int32) {
	return l.offsetX + int32(p.X)*l.cellSize, l.offsetY + int32(p.Y)*l.cellSize
}

// Draw renders the current frame: board, snake, food, HUD, and any
// overlay. Overlay buttons mutate state through the controller, so
// Draw is also where restart clicks land.
func (g *Game) Draw() {
	snap := g.state.Snapshot()
	l := layout()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Board background and border.
	rl.DrawRectangle(l.offsetX-1, l.offsetY-1, l.width+2, l.height+2, rl.DarkGray)
	rl.DrawRectangle(l.offsetX, l.offsetY, l.width, l.height, rl.Color{R: 20, G: 24, B: 20, A: 255})

	if config.Cfg().Screen.ShowGrid {
		for x := 0; x < engine.GridSize; x++ {
			for y := 0; y < engine.GridSize; y++ {
				cx, cy := l.cellRect(engine.Position{X: x, Y: y})
				rl.DrawRectangleLines(cx, cy, l.cellSize, l.cellSize, rl.Color{R: 40, G: 44, B: 40, A: 255})
			}
		}
	}

	// Food is hidden once the board is complete.
	if !snap.Won {
		fx, fy := l.cellRect(snap.Food)
		rl.DrawRectangle(fx+1, fy+1, l.cellSize-2, l.cellSize-2, rl.Red)
	}

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		sx, sy := l.cellRect(snap.Snake[i])
		color := rl.Green
		if i == 0 {
			color = rl.Lime
		}
		rl.DrawRectangle(sx+1, sy+1, l.cellSize-2, l.cellSize-2, color)
	}

	g.drawHUD(snap)
	g.drawOverlays(snap, l)

	rl.EndDrawing()
}

// drawHUD renders the score strip above the board.
func (g *Game) drawHUD(snap engine.Snapshot) {
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), borderPadding, 14, 20, rl.White)

	speed := fmt.Sprintf("Tick: %dms", snap.Interval.Milliseconds())
	rl.DrawText(speed, borderPadding+160, 14, 20, rl.Gray)

	if snap.Paused && !snap.Over && !snap.Won {
		rl.DrawText("PAUSED", borderPadding+300, 14, 20, rl.Yellow)
	}
}
