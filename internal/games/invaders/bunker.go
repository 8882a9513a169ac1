package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// BunkerField owns every alive bunker block on the field.
// Blocks are kept in build order: bunker by bunker, row-major within a bunker.
type BunkerField struct {
	mask   Mask
	block  float64
	top    float64
	fieldW float64

	blocks []BunkerBlock

	arena *handleArena
	out   Renderer
}

func newBunkerField(cfg config.BunkerConfig, fieldW float64, arena *handleArena, out Renderer) *BunkerField {
	return &BunkerField{
		mask:   ParseMask(cfg.Mask),
		block:  cfg.Block,
		top:    cfg.Top,
		fieldW: fieldW,
		arena:  arena,
		out:    out,
	}
}

// Width returns the width of one bunker.
func (f *BunkerField) Width() float64 {
	return float64(f.mask.Cols()) * f.block
}

// Layout returns the left edges of count equally spaced bunkers.
// Origins are rounded to whole units.
func (f *BunkerField) Layout(count int) []float64 {
	if count <= 0 {
		return nil
	}
	w := f.Width()
	spacing := (f.fieldW - float64(count)*w) / float64(count+1)
	origins := make([]float64, count)
	for i := range origins {
		origins[i] = math.Round(spacing*float64(i+1) + w*float64(i))
	}
	return origins
}

// Build replaces the field with one bunker per origin.
func (f *BunkerField) Build(origins []float64) {
	f.Clear()
	f.blocks = make([]BunkerBlock, 0, len(origins)*f.mask.Count())
	for _, x0 := range origins {
		for r, row := range f.mask {
			for c, on := range row {
				if !on {
					continue
				}
				b := BunkerBlock{
					Handle: f.arena.alloc(),
					X:      x0 + float64(c)*f.block,
					Y:      f.top + float64(r)*f.block,
					Size:   f.block,
				}
				f.blocks = append(f.blocks, b)
				f.out.DrawBlock(b.Handle, BlockBunker, b.Box())
			}
		}
	}
}

// Absorb destroys the topmost block overlapping impact and returns it.
// On equal y the block built first wins.
func (f *BunkerField) Absorb(impact core.Box) (BunkerBlock, bool) {
	hit := -1
	for i, b := range f.blocks {
		if !b.Box().Overlaps(impact) {
			continue
		}
		if hit < 0 || b.Y < f.blocks[hit].Y {
			hit = i
		}
	}
	if hit < 0 {
		return BunkerBlock{}, false
	}
	b := f.blocks[hit]
	f.blocks = append(f.blocks[:hit], f.blocks[hit+1:]...)
	f.out.RemoveBlock(b.Handle)
	return b, true
}

// BlocksAbove reports whether any block whose top is above y spans x.
func (f *BunkerField) BlocksAbove(x, y float64) bool {
	for _, b := range f.blocks {
		if b.Y < y && b.Box().ContainsX(x) {
			return true
		}
	}
	return false
}

// Clear removes every block.
func (f *BunkerField) Clear() {
	for _, b := range f.blocks {
		f.out.RemoveBlock(b.Handle)
	}
	f.blocks = nil
}

// Len returns the number of alive blocks.
func (f *BunkerField) Len() int {
	return len(f.blocks)
}

// Blocks returns the alive blocks in build order.
func (f *BunkerField) Blocks() []BunkerBlock {
	return f.blocks
}
