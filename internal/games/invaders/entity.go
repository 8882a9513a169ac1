package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Handle identifies one drawable entity for the renderer.
// Handles are allocated by the match and never reused within it.
type Handle uint32

// handleArena hands out handles in increasing order.
type handleArena struct {
	next Handle
}

func (a *handleArena) alloc() Handle {
	a.next++
	return a.next
}

// Mask is a grid of present (true) and absent (false) cells.
type Mask [][]bool

// ParseMask converts rows of '0'/'1' characters into a Mask.
// Any character other than '1' is treated as a hole.
func ParseMask(rows []string) Mask {
	m := make(Mask, len(rows))
	for r, row := range rows {
		m[r] = make([]bool, len(row))
		for c := 0; c < len(row); c++ {
			m[r][c] = row[c] == '1'
		}
	}
	return m
}

// Rows returns the mask height.
func (m Mask) Rows() int {
	return len(m)
}

// Cols returns the mask width.
func (m Mask) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Count returns the number of present cells.
func (m Mask) Count() int {
	n := 0
	for _, row := range m {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// Player is the cannon at the bottom of the field.
type Player struct {
	Handle Handle
	X, Y   float64 // Top-left corner
	W, H   float64
	Health int
	Alive  bool
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// CenterX returns the horizontal center of the cannon.
func (p *Player) CenterX() float64 {
	return p.X + p.W/2
}

// Side tells which combatant fired a projectile.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Projectile is a round shot moving vertically.
// VY is negative for player shots (upward) and positive for enemy shots.
type Projectile struct {
	Handle Handle
	Side   Side
	CX, CY float64
	R      float64
	VY     float64
}

// Circle returns the projectile's shape.
func (p *Projectile) Circle() core.Circle {
	return core.Circle{CX: p.CX, CY: p.CY, R: p.R}
}

// Bounds returns the projectile's bounding square.
func (p *Projectile) Bounds() core.Box {
	return p.Circle().Bounds()
}

// SubBlock is one cell of an enemy sprite, positioned relative to the enemy anchor.
type SubBlock struct {
	Handle Handle
	DX, DY float64
}

// Enemy is a rigid sprite of sub-blocks moving with its anchor.
type Enemy struct {
	ID     Handle
	X, Y   float64 // Anchor (top-left of the sprite grid)
	W, H   float64 // Aggregate size: sprite cols/rows times cell size
	Cell   float64
	Blocks []SubBlock
}

// Box returns the aggregate bounding box of the sprite grid.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// BlockBox returns the absolute box of one sub-block.
func (e *Enemy) BlockBox(b SubBlock) core.Box {
	return core.NewBox(e.X+b.DX, e.Y+b.DY, e.Cell, e.Cell)
}

// BunkerBlock is a single destructible square of cover.
type BunkerBlock struct {
	Handle Handle
	X, Y   float64 // Top-left corner
	Size   float64
}

// Box returns the block's bounding box.
func (b BunkerBlock) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Size, b.Size)
}
