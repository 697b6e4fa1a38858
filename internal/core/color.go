package core

// Color represents the style of a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the board, preview and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPink
	ColorTeal
	ColorGold
	ColorGray
	ColorHighlight // Reverse video, used for the cursor
	ColorWildcard  // Black on white
)

// symbolPalette cycles through for tiles; the HUD colours are excluded.
var symbolPalette = []Color{
	ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta,
	ColorCyan, ColorOrange, ColorPink, ColorTeal, ColorGold,
}

// PaletteColor returns the i-th tile colour, wrapping around.
func PaletteColor(i int) Color {
	return symbolPalette[Wrap(i, len(symbolPalette))]
}
