package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
	minHUDW    = 36
)

// tileColors maps tile values to their foreground color.
// Values above the table use ColorMagenta.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorBrightGreen,
	512:  core.ColorGreen,
	1024: core.ColorBrightCyan,
	2048: core.ColorBrightMagenta,
}

// TileColor returns the color a tile value is drawn in.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	return core.ColorMagenta
}

func (g *Game) boardDims() (w, h int) {
	size := g.cfg.Board.Size
	if g.model != nil {
		size = g.model.Size()
	}
	return size*cellWidth + 1, size*cellHeight + 1
}

// minScreenSize is the smallest screen the board, HUD and footer fit in.
func (g *Game) minScreenSize() (w, h int) {
	boardW, boardH := g.boardDims()
	return max(boardW+2, minHUDW), hudHeight + 1 + boardH + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardDims()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	dst.DrawTextCenteredColored(boardY+boardH+1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst, boardY, boardH)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	minW, minH := g.minScreenSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Please resize terminal to %dx%d", minW, minH))
}

// renderHUD draws the title, score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.model.Score()))

	best := fmt.Sprintf("Best: %d", max(g.model.MaxScore(), g.model.Score()))
	dst.DrawText(boardX+boardW-len(best), 1, best)

	var info string
	switch g.mode {
	case ModeCampaign:
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, g.campaign.Count(), g.target)
	case ModeClassic:
		info = fmt.Sprintf("Goal: %d  Max: %d", g.model.MaxPiece(), g.model.MaxTile())
	default:
		info = fmt.Sprintf("Max tile: %d", g.model.MaxTile())
	}
	dst.DrawTextCenteredColored(2, info, core.ColorCyan)
}

// gridRune picks the box-drawing character for the grid line crossing
// at column line x and row line y.
func gridRune(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderBoard draws the grid lines and tiles. Board row 0 is drawn at the bottom.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.model.Size()

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.SetColored(px, py, gridRune(x, y, n), core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for row := range n {
		for col := range n {
			tile, ok := g.model.Tile(col, row)
			if !ok {
				continue
			}

			cellX := boardX + col*cellWidth + 1
			cellY := boardY + (n-1-row)*cellHeight + 1

			label := strconv.Itoa(tile.Value)
			pad := max(0, (cellWidth-1-len(label))/2)
			dst.DrawTextColored(cellX+pad, cellY, label, TileColor(tile.Value))
		}
	}
}

// renderOverlays draws game state overlays over the board rows.
func (g *Game) renderOverlays(dst *core.Screen, boardY, boardH int) {
	area := core.NewRect(0, boardY, g.screenW, boardH)

	switch {
	case g.paused:
		g.drawOverlay(dst, area, core.ColorCyan, "PAUSED", "Press P to resume")

	case g.levelCleared:
		reached := fmt.Sprintf("Target %d reached!", g.target)
		if g.levelIndex >= g.campaign.Count()-1 {
			g.drawOverlay(dst, area, core.ColorBrightGreen, reached, "Final level complete!")
		} else {
			g.drawOverlay(dst, area, core.ColorBrightGreen, reached, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}

	case g.campaignWon:
		g.drawOverlay(dst, area, core.ColorBrightYellow, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")

	case g.model.Won():
		g.drawOverlay(dst, area, core.ColorBrightYellow, "YOU WIN!", fmt.Sprintf("Score: %d", g.model.Score()), "Press R to restart")

	case g.model.IsOver():
		g.drawOverlay(dst, area, core.ColorBrightRed, "GAME OVER", fmt.Sprintf("Max tile: %d", g.model.MaxTile()), "Press R to restart")
	}
}

// drawOverlay draws a boxed text overlay centered in area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenteredIn(maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColored(centerX-len([]rune(line))/2, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
