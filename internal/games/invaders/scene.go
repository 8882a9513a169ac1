package invaders

import (
	"maps"
	"math"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '▀'
	EnemyChar      = '█'
	BunkerChar     = '▓'
	PlayerShotChar = '│'
	EnemyShotChar  = '●'
)

// cellEpsilon absorbs float error when an edge lands exactly on a cell boundary.
const cellEpsilon = 1e-9

type sceneBlock struct {
	kind BlockKind
	box  core.Box
}

type sceneShot struct {
	side   Side
	circle core.Circle
}

// Scene is a Renderer that keeps every primitive it is told about and
// paints them onto a core.Screen, scaled from playfield units to cells.
type Scene struct {
	fieldW, fieldH float64

	blocks map[Handle]*sceneBlock
	shots  map[Handle]*sceneShot

	text      string
	textStyle TextStyle
	health    int
}

// NewScene creates an empty scene for a field of the given size.
func NewScene(fieldW, fieldH float64) *Scene {
	return &Scene{
		fieldW: fieldW,
		fieldH: fieldH,
		blocks: make(map[Handle]*sceneBlock),
		shots:  make(map[Handle]*sceneShot),
	}
}

var _ Renderer = (*Scene)(nil)

func (s *Scene) DrawBlock(h Handle, kind BlockKind, box core.Box) {
	s.blocks[h] = &sceneBlock{kind: kind, box: box}
}

func (s *Scene) RemoveBlock(h Handle) {
	delete(s.blocks, h)
}

func (s *Scene) DrawProjectile(h Handle, side Side, c core.Circle) {
	s.shots[h] = &sceneShot{side: side, circle: c}
}

func (s *Scene) RemoveProjectile(h Handle) {
	delete(s.shots, h)
}

func (s *Scene) UpdatePosition(h Handle, x, y float64) {
	if b, ok := s.blocks[h]; ok {
		b.box = core.NewBox(x, y, b.box.Width(), b.box.Height())
		return
	}
	if p, ok := s.shots[h]; ok {
		p.circle.CX = x
		p.circle.CY = y
	}
}

func (s *Scene) DisplayText(msg string, style TextStyle) {
	s.text = msg
	s.textStyle = style
}

func (s *Scene) ClearText() {
	s.text = ""
}

func (s *Scene) UpdateHealthDisplay(n int) {
	s.health = n
}

// Text returns the overlay message, empty when none is shown.
func (s *Scene) Text() string { return s.text }

// Health returns the last health value displayed.
func (s *Scene) Health() int { return s.health }

// Blocks returns the number of blocks of a kind on screen.
func (s *Scene) Blocks(kind BlockKind) int {
	n := 0
	for _, b := range s.blocks {
		if b.kind == kind {
			n++
		}
	}
	return n
}

// Projectiles returns the number of shots of a side on screen.
func (s *Scene) Projectiles(side Side) int {
	n := 0
	for _, p := range s.shots {
		if p.side == side {
			n++
		}
	}
	return n
}

// Paint draws the scene into area of dst.
// Primitives are painted in handle order so the output is stable.
func (s *Scene) Paint(dst *core.Screen, area core.Rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	sx := float64(area.W) / s.fieldW
	sy := float64(area.H) / s.fieldH

	for _, h := range slices.Sorted(maps.Keys(s.blocks)) {
		b := s.blocks[h]
		glyph, color := blockLook(b.kind)
		s.fill(dst, area, b.box, sx, sy, glyph, color)
	}
	for _, h := range slices.Sorted(maps.Keys(s.shots)) {
		p := s.shots[h]
		x := area.X + int(p.circle.CX*sx)
		y := area.Y + int(p.circle.CY*sy)
		if !area.Contains(x, y) {
			continue
		}
		if p.side == SidePlayer {
			dst.SetColored(x, y, PlayerShotChar, core.ColorWhite)
		} else {
			dst.SetColored(x, y, EnemyShotChar, core.ColorOrange)
		}
	}

	if s.text != "" {
		dst.DrawTextCentered(area.Y+area.H/2, s.text, textColor(s.textStyle))
	}
}

// fill paints every cell the box touches, at least one cell.
func (s *Scene) fill(dst *core.Screen, area core.Rect, box core.Box, sx, sy float64, glyph rune, color core.Color) {
	x0 := int(box.Left * sx)
	y0 := int(box.Top * sy)
	x1 := int(math.Ceil(box.Right*sx-cellEpsilon)) - 1
	y1 := int(math.Ceil(box.Bottom*sy-cellEpsilon)) - 1
	x1 = max(x1, x0)
	y1 = max(y1, y0)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if area.Contains(area.X+x, area.Y+y) {
				dst.SetColored(area.X+x, area.Y+y, glyph, color)
			}
		}
	}
}

func blockLook(kind BlockKind) (rune, core.Color) {
	switch kind {
	case BlockPlayer:
		return PlayerChar, core.ColorLightGreen
	case BlockEnemy:
		return EnemyChar, core.ColorViolet
	default:
		return BunkerChar, core.ColorGreen
	}
}

func textColor(style TextStyle) core.Color {
	if style == TextGameOver {
		return core.ColorRed
	}
	return core.ColorLightBlue
}
