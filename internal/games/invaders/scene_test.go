package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestScenePaintScales(t *testing.T) {
	s := NewScene(500, 500)
	s.DrawBlock(1, BlockPlayer, core.NewBox(0, 450, 36, 10))
	s.DrawProjectile(2, SideEnemy, core.Circle{CX: 250, CY: 250, R: 5})

	dst := core.NewScreen(50, 50)
	s.Paint(dst, core.NewRect(0, 0, 50, 50))

	for x := 0; x <= 3; x++ {
		cell := dst.GetCell(x, 45)
		if cell.Rune != PlayerChar || cell.Color != core.ColorLightGreen {
			t.Errorf("cell (%d, 45) = %q/%v, expected player", x, cell.Rune, cell.Color)
		}
	}
	if got := dst.Get(4, 45); got == PlayerChar {
		t.Error("player painted past its right edge")
	}
	if got := dst.GetCell(25, 25); got.Rune != EnemyShotChar || got.Color != core.ColorOrange {
		t.Errorf("cell (25, 25) = %q/%v, expected enemy shot", got.Rune, got.Color)
	}
}

func TestSceneSmallBlockFillsOneCell(t *testing.T) {
	s := NewScene(500, 500)
	s.DrawBlock(1, BlockEnemy, core.NewBox(101, 60, 3, 3))

	dst := core.NewScreen(50, 50)
	s.Paint(dst, core.NewRect(0, 0, 50, 50))

	if got := dst.Get(10, 6); got != EnemyChar {
		t.Errorf("cell (10, 6) = %q, expected %q", got, EnemyChar)
	}
}

func TestSceneUpdateAndRemove(t *testing.T) {
	s := NewScene(500, 500)
	s.DrawProjectile(7, SidePlayer, core.Circle{CX: 250, CY: 250, R: 5})
	s.UpdatePosition(7, 100, 100)
	s.DrawBlock(8, BlockBunker, core.NewBox(0, 0, 6, 6))
	s.UpdatePosition(8, 200, 300)

	dst := core.NewScreen(50, 50)
	s.Paint(dst, core.NewRect(0, 0, 50, 50))
	if got := dst.Get(10, 10); got != PlayerShotChar {
		t.Errorf("moved shot cell = %q, expected %q", got, PlayerShotChar)
	}
	if got := dst.Get(25, 25); got != ' ' {
		t.Errorf("old shot cell = %q, expected blank", got)
	}
	if got := dst.Get(20, 30); got != BunkerChar {
		t.Errorf("moved block cell = %q, expected %q", got, BunkerChar)
	}

	s.RemoveProjectile(7)
	s.RemoveBlock(8)
	if s.Projectiles(SidePlayer) != 0 || s.Blocks(BlockBunker) != 0 {
		t.Error("primitives still present after removal")
	}

	// Unknown handles are ignored
	s.UpdatePosition(99, 1, 1)
	s.RemoveBlock(99)
}

func TestSceneTextAndHealth(t *testing.T) {
	s := NewScene(500, 500)
	s.UpdateHealthDisplay(2)
	s.DisplayText(MsgGameOver, TextGameOver)

	if s.Health() != 2 {
		t.Errorf("Health() = %d, expected 2", s.Health())
	}

	dst := core.NewScreen(50, 50)
	s.Paint(dst, core.NewRect(0, 0, 50, 50))
	if got := dst.GetCell(20, 25); got.Rune != 'G' || got.Color != core.ColorRed {
		t.Errorf("overlay cell = %q/%v, expected red 'G'", got.Rune, got.Color)
	}

	s.ClearText()
	if s.Text() != "" {
		t.Errorf("Text() = %q after ClearText(), expected empty", s.Text())
	}
}

func TestSceneMirrorsMatch(t *testing.T) {
	s := NewScene(500, 500)
	m := newTestMatch(t, WithRenderer(s))

	if s.Blocks(BlockEnemy) != 6*46 {
		t.Errorf("enemy blocks = %d, expected %d", s.Blocks(BlockEnemy), 6*46)
	}
	if s.Blocks(BlockBunker) != m.Bunkers().Len() {
		t.Errorf("bunker blocks = %d, expected %d", s.Blocks(BlockBunker), m.Bunkers().Len())
	}
	if s.Blocks(BlockPlayer) != 1 {
		t.Errorf("player blocks = %d, expected 1", s.Blocks(BlockPlayer))
	}

	clearLevel(m)
	if s.Blocks(BlockEnemy) != 0 || s.Projectiles(SidePlayer) != 0 {
		t.Errorf("after clear: %d enemy blocks, %d shots, expected none", s.Blocks(BlockEnemy), s.Projectiles(SidePlayer))
	}
	if s.Text() != MsgLevelClear {
		t.Errorf("Text() = %q, expected %q", s.Text(), MsgLevelClear)
	}

	m.Advance(m.Config().Timing.LevelClearDelay())
	if s.Text() != "" {
		t.Errorf("Text() = %q after next level started, expected empty", s.Text())
	}
	if s.Blocks(BlockBunker) != 104 || s.Blocks(BlockPlayer) != 1 {
		t.Errorf("bunker/player blocks = %d/%d, expected 104/1", s.Blocks(BlockBunker), s.Blocks(BlockPlayer))
	}
}
