package triplets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-triplets/internal/core"
	tcore "github.com/vovakirdan/tui-triplets/internal/games/triplets/core"
)

const (
	minContentW = 60
	chromeRows  = 7 // HUD, spacer, preview, buttons and help rows around the grid
	gridTop     = 2

	undoLabel    = "[U] Undo"
	shuffleLabel = "[X] Shuffle"
	helpLine     = "Arrows move  Space take  U undo  X shuffle  P pause"
)

// cellStyle is one way of drawing a board position.
type cellStyle struct {
	w, h  int
	boxed bool
}

// Boxed cells are preferred; compact cells let big boards fit small terminals.
var cellStyles = []cellStyle{
	{w: 7, h: 3, boxed: true},
	{w: 4, h: 1},
}

// layout holds the screen geometry shared by rendering and click handling.
type layout struct {
	originX    int
	contentW   int
	grid       core.GridLayout
	boxed      bool
	previewY   int
	buttonsY   int
	undoBtn    core.Rect
	shuffleBtn core.Rect
	helpY      int
}

// computeLayout fits a board of dims into a w x h screen.
func computeLayout(w, h int, dims tcore.Dimensions) (layout, bool) {
	for _, st := range cellStyles {
		gw, gh := dims.W*st.w, dims.H*st.h
		contentW := max(gw, minContentW)
		if contentW > w || gh+chromeRows > h {
			continue
		}

		originX := (w - contentW) / 2
		lay := layout{
			originX:  originX,
			contentW: contentW,
			boxed:    st.boxed,
			grid: core.GridLayout{
				X:     originX + (contentW-gw)/2,
				Y:     gridTop,
				CellW: st.w,
				CellH: st.h,
				Cols:  dims.W,
				Rows:  dims.H,
			},
			previewY: gridTop + gh + 1,
			helpY:    h - 1,
		}
		lay.buttonsY = lay.previewY + 2
		lay.undoBtn = core.NewRect(originX, lay.buttonsY, core.TextWidth(undoLabel), 1)
		lay.shuffleBtn = core.NewRect(lay.undoBtn.Right()+2, lay.buttonsY, core.TextWidth(shuffleLabel), 1)
		return lay, true
	}
	return layout{}, false
}

// symbolColor returns the colour a symbol is drawn in.
func symbolColor(s tcore.Symbol) core.Color {
	if s.IsWildcard() {
		return core.ColorWildcard
	}
	return core.PaletteColor(int(s) - 1)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPreview(dst)
	g.renderButtons(dst)
	dst.DrawTextCenteredColored(g.layout.helpY, helpLine, core.ColorGray)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen) {
	lay := g.layout
	dims := g.session.Dimensions()

	x := dst.DrawTextColored(lay.originX, 0, "TRIPLETS", core.ColorGold)
	dst.DrawText(x+2, 0, fmt.Sprintf("Level %d (%s)", g.session.Level(), dims))

	timer, timerColor := g.timerText()
	right := fmt.Sprintf("Score %d  Best %d  ", g.State().Score, g.session.BestLevel())
	rx := lay.originX + lay.contentW - core.TextWidth(right) - core.TextWidth(timer)
	rx = dst.DrawText(rx, 0, right)
	dst.DrawTextColored(rx, 0, timer, timerColor)
}

// timerText formats the level clock. It turns red under ten seconds.
func (g *Game) timerText() (string, core.Color) {
	if g.limit() <= 0 {
		return "Time --", core.ColorGray
	}
	left := g.remaining()
	secs := int((left + time.Second - 1) / time.Second)
	text := fmt.Sprintf("Time %d:%02d", secs/60, secs%60)
	if left < 10*time.Second {
		return text, core.ColorRed
	}
	return text, core.ColorDefault
}

func (g *Game) renderBoard(dst *core.Screen) {
	lay := g.layout
	showHeight := g.session.Dimensions().D > 1

	for _, p := range g.session.Positions() {
		r := lay.grid.Cell(p.Col, p.Row)
		top := g.session.TopAt(p)
		height := g.session.StackHeight(p)
		selected := p.Col == g.cursorCol && p.Row == g.cursorRow

		glyph, color := "·", core.ColorGray
		if top != tcore.None {
			glyph, color = string(top.Glyph()), symbolColor(top)
		}
		depth := ""
		if showHeight && height > 0 {
			depth = strconv.Itoa(height)
		}

		if lay.boxed {
			frame := core.ColorGray
			if selected {
				frame = core.ColorHighlight
			}
			dst.DrawBox(r, frame)
			dst.DrawTextColored(r.X+2, r.Y+1, glyph, color)
			dst.DrawTextColored(r.X+4, r.Y+1, depth, core.ColorGray)
			continue
		}

		if selected {
			dst.SetColored(r.X, r.Y, '[', core.ColorHighlight)
			dst.SetColored(r.X+3, r.Y, ']', core.ColorHighlight)
		}
		dst.DrawTextColored(r.X+1, r.Y, glyph, color)
		dst.DrawTextColored(r.X+2, r.Y, depth, core.ColorGray)
	}
}

// renderPreview draws the preview queue. The last three entries, the ones
// a triple can form from, are bracketed. Long queues keep their tail.
func (g *Game) renderPreview(dst *core.Screen) {
	lay := g.layout
	x := dst.DrawText(lay.originX, lay.previewY, "Preview ")

	items := g.session.Preview()
	if len(items) == 0 {
		dst.DrawTextColored(x, lay.previewY, "(empty)", core.ColorGray)
		return
	}

	room := (lay.originX + lay.contentW - x - 2) / 2
	start := 0
	if len(items) > room {
		start = len(items) - room + 1
		x = dst.DrawTextColored(x, lay.previewY, "… ", core.ColorGray)
	}
	tail := max(len(items)-3, 0)

	for i := start; i < len(items); i++ {
		sep := " "
		if i == tail {
			sep = "["
		}
		x = dst.DrawTextColored(x, lay.previewY, sep, core.ColorWhite)
		x = dst.DrawTextColored(x, lay.previewY, string(items[i].Glyph()), symbolColor(items[i]))
	}
	dst.DrawTextColored(x, lay.previewY, "]", core.ColorWhite)
}

func (g *Game) renderButtons(dst *core.Screen) {
	lay := g.layout

	undoColor := core.ColorGray
	if g.undoUnlocked() && g.session.CanUndo() {
		undoColor = core.ColorCyan
	}
	shuffleColor := core.ColorGray
	if g.shuffleUnlocked() {
		shuffleColor = core.ColorCyan
	}
	dst.DrawTextColored(lay.undoBtn.X, lay.undoBtn.Y, undoLabel, undoColor)
	dst.DrawTextColored(lay.shuffleBtn.X, lay.shuffleBtn.Y, shuffleLabel, shuffleColor)

	if g.flashTicks > 0 && g.flash != "" {
		fx := lay.originX + lay.contentW - core.TextWidth(g.flash)
		if fx > lay.shuffleBtn.Right()+1 {
			dst.DrawTextColored(fx, lay.buttonsY, g.flash, core.ColorYellow)
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen) {
	level := g.session.Level()
	switch {
	case g.phase == phaseVictory:
		g.drawPanel(dst, core.ColorGreen, "Congrats!",
			fmt.Sprintf("Level %d cleared", level),
			fmt.Sprintf("Score %d", g.State().Score))
	case g.phase == phaseTimeout:
		g.drawPanel(dst, core.ColorRed, "Time's up!", fmt.Sprintf("Restarting level %d", level))
	case g.phase == phaseStuck:
		g.drawPanel(dst, core.ColorOrange, "No moves left",
			"The board is empty but the preview is not.",
			"R restart level  B menu")
	case g.paused:
		g.drawPanel(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	case g.hintTicks > 0 && g.hint != "":
		g.drawPanel(dst, core.ColorGold, wrapText(g.hint, g.layout.contentW-4)...)
	}
}

// drawPanel draws a framed box of centered lines over the board.
func (g *Game) drawPanel(dst *core.Screen, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, core.TextWidth(l))
	}
	w += 4
	h := len(lines) + 2

	grid := g.layout.grid.Bounds()
	x := (g.screenW - w) / 2
	y := max(grid.Y+(grid.H-h)/2, 1)
	r := core.NewRect(x, y, w, h)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, c)
	for i, l := range lines {
		lx := x + (w-core.TextWidth(l))/2
		lc := core.ColorDefault
		if i == 0 {
			lc = c
		}
		dst.DrawTextColored(lx, y+1+i, l, lc)
	}
}

// wrapText breaks text into lines no wider than width.
func wrapText(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && core.TextWidth(cur.String())+1+core.TextWidth(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
