package core

// Color is a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color style.
type Color uint8

// Palette used by the invaders playfield.
const (
	ColorDefault     Color = iota
	ColorRed               // Game over text
	ColorGreen             // Bunker blocks
	ColorLightGreen        // Player cannon
	ColorViolet            // Enemy sprites
	ColorWhite             // Player shots
	ColorOrange            // Enemy shots
	ColorLightBlue         // Level clear / victory text
	ColorGray              // Borders and HUD separators
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorLightGreen:
		return "lightgreen"
	case ColorViolet:
		return "violet"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorLightBlue:
		return "lightblue"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
