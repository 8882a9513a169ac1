package invaders

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

import "github.com/vovakirdan/tui-invaders/internal/core"

// BlockKind tells the renderer what a rectangular block belongs to.
type BlockKind int

const (
	BlockPlayer BlockKind = iota
	BlockEnemy
	BlockBunker
)

// TextStyle selects how an overlay message is shown.
type TextStyle int

const (
	TextLevelClear TextStyle = iota
	TextVictory
	TextGameOver
)

// Renderer receives fire-and-forget drawing commands from the match.
// The match allocates every handle; the renderer maps handles to its own primitives.
type Renderer interface {
	// DrawBlock shows a rectangle. Box is in playfield units.
	DrawBlock(h Handle, kind BlockKind, box core.Box)
	// RemoveBlock hides a rectangle previously drawn.
	RemoveBlock(h Handle)
	// DrawProjectile shows a shot.
	DrawProjectile(h Handle, side Side, c core.Circle)
	// RemoveProjectile hides a shot previously drawn.
	RemoveProjectile(h Handle)
	// UpdatePosition moves a primitive: top-left for blocks, center for projectiles.
	UpdatePosition(h Handle, x, y float64)
	// DisplayText shows an overlay message.
	DisplayText(msg string, style TextStyle)
	// ClearText removes any overlay message.
	ClearText()
	// UpdateHealthDisplay shows the remaining player health.
	UpdateHealthDisplay(n int)
}

// NopRenderer discards all drawing commands.
type NopRenderer struct{}

func (NopRenderer) DrawBlock(Handle, BlockKind, core.Box) {}
func (NopRenderer) RemoveBlock(Handle) {}
func (NopRenderer) DrawProjectile(Handle, Side, core.Circle) {}
func (NopRenderer) RemoveProjectile(Handle) {}
func (NopRenderer) UpdatePosition(Handle, float64, float64) {}
func (NopRenderer) DisplayText(string, TextStyle) {}
func (NopRenderer) ClearText() {}
func (NopRenderer) UpdateHealthDisplay(int) {}

var _ Renderer = NopRenderer{}
