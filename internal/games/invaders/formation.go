package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Formation owns the alive enemies and their shared horizontal speed.
type Formation struct {
	sprite Mask
	cell   float64
	slots  []float64
	top    float64
	fieldW float64

	enemies []*Enemy
	speed   float64

	arena *handleArena
	out   Renderer
}

func newFormation(cfg config.FormationConfig, fieldW float64, arena *handleArena, out Renderer) *Formation {
	return &Formation{
		sprite: ParseMask(cfg.Sprite),
		cell:   cfg.Cell,
		slots:  cfg.Slots,
		top:    cfg.Top,
		fieldW: fieldW,
		arena:  arena,
		out:    out,
	}
}

// Spawn replaces the formation with one enemy per slot.
// The formation starts moving right at the given speed magnitude.
func (f *Formation) Spawn(speed float64) {
	f.Clear()
	f.speed = math.Abs(speed)
	w := float64(f.sprite.Cols()) * f.cell
	h := float64(f.sprite.Rows()) * f.cell
	f.enemies = make([]*Enemy, 0, len(f.slots))
	for _, x := range f.slots {
		e := &Enemy{
			ID:   f.arena.alloc(),
			X:    x,
			Y:    f.top,
			W:    w,
			H:    h,
			Cell: f.cell,
		}
		for r, row := range f.sprite {
			for c, on := range row {
				if !on {
					continue
				}
				b := SubBlock{
					Handle: f.arena.alloc(),
					DX:     float64(c) * f.cell,
					DY:     float64(r) * f.cell,
				}
				e.Blocks = append(e.Blocks, b)
				f.out.DrawBlock(b.Handle, BlockEnemy, e.BlockBox(b))
			}
		}
		f.enemies = append(f.enemies, e)
	}
}

// Advance moves the formation one step.
// The first enemy to touch a wall flips the shared speed and ends the step,
// so enemies after it keep their position. Reports whether the speed flipped.
func (f *Formation) Advance() bool {
	for _, e := range f.enemies {
		e.X += f.speed
		for _, b := range e.Blocks {
			f.out.UpdatePosition(b.Handle, e.X+b.DX, e.Y+b.DY)
		}
		if e.X+e.W >= f.fieldW || e.X <= 0 {
			f.speed = -f.speed
			return true
		}
	}
	return false
}

// Destroy removes an enemy and all of its sub-blocks.
func (f *Formation) Destroy(e *Enemy) {
	for i, cur := range f.enemies {
		if cur != e {
			continue
		}
		for _, b := range e.Blocks {
			f.out.RemoveBlock(b.Handle)
		}
		f.enemies = append(f.enemies[:i], f.enemies[i+1:]...)
		return
	}
}

// PickRandom returns a uniformly chosen alive enemy.
func (f *Formation) PickRandom(rng *SimpleRNG) (*Enemy, bool) {
	if len(f.enemies) == 0 {
		return nil, false
	}
	return f.enemies[rng.Intn(len(f.enemies))], true
}

// Clear removes every enemy.
func (f *Formation) Clear() {
	for _, e := range f.enemies {
		for _, b := range e.Blocks {
			f.out.RemoveBlock(b.Handle)
		}
	}
	f.enemies = nil
}

// Len returns the number of alive enemies.
func (f *Formation) Len() int {
	return len(f.enemies)
}

// Speed returns the signed shared speed.
func (f *Formation) Speed() float64 {
	return f.speed
}

// Enemies returns the alive enemies in slot order.
func (f *Formation) Enemies() []*Enemy {
	return f.enemies
}
