package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// recordingRenderer counts the overlay and health updates a match emits.
type recordingRenderer struct {
	NopRenderer
	texts  []string
	health []int
}

func (r *recordingRenderer) DisplayText(msg string, _ TextStyle) { r.texts = append(r.texts, msg) }
func (r *recordingRenderer) UpdateHealthDisplay(n int) { r.health = append(r.health, n) }

func newTestMatch(t *testing.T, opts ...Option) *Match {
	t.Helper()
	return newTestMatchConfig(t, config.DefaultInvadersConfig(), opts...)
}

func newTestMatchConfig(t *testing.T, cfg config.InvadersConfig, opts ...Option) *Match {
	t.Helper()
	m, err := NewMatch(cfg, opts...)
	if err != nil {
		t.Fatalf("NewMatch() failed: %v", err)
	}
	return m
}

func injectShot(m *Match, side Side, cx, cy, vy float64) *Projectile {
	p := &Projectile{
		Handle: m.arena.alloc(),
		Side:   side,
		CX:     cx,
		CY:     cy,
		R:      m.cfg.Shots.Radius,
		VY:     vy,
	}
	m.out.DrawProjectile(p.Handle, side, p.Circle())
	if side == SidePlayer {
		m.playerShots = append(m.playerShots, p)
	} else {
		m.enemyShots = append(m.enemyShots, p)
	}
	return p
}

func TestFireRateLimitAndCap(t *testing.T) {
	m := newTestMatch(t)

	if !m.FirePlayerProjectile(0) {
		t.Fatal("first shot rejected")
	}
	if m.FirePlayerProjectile(50 * time.Millisecond) {
		t.Error("shot 50ms after the first was accepted")
	}
	if m.PlayerProjectiles() != 1 {
		t.Errorf("PlayerProjectiles() = %d, expected 1", m.PlayerProjectiles())
	}

	if !m.FirePlayerProjectile(200 * time.Millisecond) {
		t.Fatal("shot 200ms after the first was rejected")
	}
	if m.PlayerProjectiles() != 2 {
		t.Errorf("PlayerProjectiles() = %d, expected 2", m.PlayerProjectiles())
	}

	if m.FirePlayerProjectile(200 * time.Millisecond) {
		t.Error("immediate third shot was accepted")
	}
	if m.FirePlayerProjectile(time.Second) {
		t.Error("shot at the Easy cap of 2 was accepted")
	}
	if m.PlayerProjectiles() != 2 {
		t.Errorf("PlayerProjectiles() = %d, expected 2", m.PlayerProjectiles())
	}
}

func TestFireSpawnsAtMuzzle(t *testing.T) {
	m := newTestMatch(t)
	m.MoveRight()
	if !m.Fire() {
		t.Fatal("Fire() rejected")
	}
	p := m.playerShots[0]
	if p.CX != 35 || p.CY != 453 || p.R != 5 || p.VY != -5 {
		t.Errorf("shot = %+v, expected center (35, 453) r=5 vy=-5", *p)
	}
}

func TestFireCapPerLevel(t *testing.T) {
	for l := LevelEasy; l < LevelCount; l++ {
		t.Run(l.String(), func(t *testing.T) {
			m := newTestMatch(t, WithStartLevel(l))
			// Stand where no bunker covers the cannon on any level
			m.player.X = 0

			accepted := 0
			for i := range 10 {
				if m.FirePlayerProjectile(time.Duration(i) * 200 * time.Millisecond) {
					accepted++
				}
			}
			if expected := DifficultyParams(l).MaxPlayerBullets; accepted != expected {
				t.Errorf("accepted %d shots, expected %d", accepted, expected)
			}
		})
	}
}

func TestFireBlockedUnderCover(t *testing.T) {
	m := newTestMatch(t)
	m.player.X = 80 // center 98, under the first Easy bunker

	if m.FirePlayerProjectile(0) {
		t.Error("shot from under a bunker was accepted")
	}
	if m.PlayerProjectiles() != 0 {
		t.Errorf("PlayerProjectiles() = %d, expected 0", m.PlayerProjectiles())
	}

	// A rejected shot does not start the rate limit
	m.player.X = 0
	if !m.FirePlayerProjectile(10 * time.Millisecond) {
		t.Error("shot from open field rejected after a covered attempt")
	}
}

func TestFireRejectedWhenNotPlaying(t *testing.T) {
	m := newTestMatch(t)
	m.player.Health = 1
	injectShot(m, SideEnemy, 18, 440, 10)
	m.stepEnemyProjectiles()
	if m.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", m.Phase())
	}
	if m.FirePlayerProjectile(time.Hour) {
		t.Error("shot accepted after game over")
	}
}

func TestPlayerProjectileLeavesField(t *testing.T) {
	m := newTestMatch(t)
	injectShot(m, SidePlayer, 400, 3, -5)
	m.stepPlayerProjectiles()
	if m.PlayerProjectiles() != 0 {
		t.Errorf("PlayerProjectiles() = %d, expected 0", m.PlayerProjectiles())
	}
}

func TestPlayerProjectileKillsOneEnemy(t *testing.T) {
	m := newTestMatch(t)
	// Inside enemy 0 (x 0..33, y 60..84) after one step
	injectShot(m, SidePlayer, 16, 90, -5)
	m.stepPlayerProjectiles()

	if m.Formation().Len() != 5 {
		t.Errorf("Formation().Len() = %d, expected 5", m.Formation().Len())
	}
	if m.Kills() != 1 {
		t.Errorf("Kills() = %d, expected 1", m.Kills())
	}
	if m.PlayerProjectiles() != 0 {
		t.Errorf("PlayerProjectiles() = %d, expected 0", m.PlayerProjectiles())
	}
}

func TestPlayerProjectileStopsAtFirstEnemy(t *testing.T) {
	m := newTestMatch(t)
	enemies := m.Formation().Enemies()
	// Stack enemy 1 on top of enemy 0 so one shot overlaps both
	enemies[1].X = enemies[0].X

	injectShot(m, SidePlayer, 16, 90, -5)
	m.stepPlayerProjectiles()

	if m.Formation().Len() != 5 {
		t.Errorf("Formation().Len() = %d, expected 5", m.Formation().Len())
	}
}

func TestLevelClearSignaledOnce(t *testing.T) {
	rec := &recordingRenderer{}
	m := newTestMatch(t, WithRenderer(rec))
	f := m.Formation()
	for f.Len() > 2 {
		f.Destroy(f.Enemies()[f.Len()-1])
	}
	// Two shots, one per remaining enemy, resolved in the same step
	injectShot(m, SidePlayer, 16, 90, -5)
	injectShot(m, SidePlayer, 66, 90, -5)
	m.stepPlayerProjectiles()

	if m.Phase() != PhaseLevelClear {
		t.Fatalf("Phase() = %v, expected level clear", m.Phase())
	}
	if len(rec.texts) != 1 || rec.texts[0] != MsgLevelClear {
		t.Errorf("texts = %v, expected [%q]", rec.texts, MsgLevelClear)
	}
}

func TestEnemyProjectileLeavesField(t *testing.T) {
	m := newTestMatch(t)
	injectShot(m, SideEnemy, 480, 498, 5)
	m.stepEnemyProjectiles()
	if m.EnemyProjectiles() != 0 {
		t.Errorf("EnemyProjectiles() = %d, expected 0", m.EnemyProjectiles())
	}
}

func TestEnemyProjectileErodesBunker(t *testing.T) {
	m := newTestMatch(t)
	before := m.Bunkers().Len()
	injectShot(m, SideEnemy, 104, 350, 5)
	m.stepEnemyProjectiles()

	if m.Bunkers().Len() != before-1 {
		t.Errorf("Bunkers().Len() = %d, expected %d", m.Bunkers().Len(), before-1)
	}
	if m.EnemyProjectiles() != 0 {
		t.Errorf("EnemyProjectiles() = %d, expected 0", m.EnemyProjectiles())
	}
}

func TestBunkerShieldsPlayer(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Bunker.Top = 440 // Low enough for one shot to touch a bunker and the cannon
	m := newTestMatchConfig(t, cfg, WithStartLevel(LevelHard))
	m.player.X = 220 // Under the single Hard bunker at 214..286

	before := m.Bunkers().Len()
	injectShot(m, SideEnemy, 250, 445, 2)
	p := m.enemyShots[0]
	if !m.player.Box().Overlaps(core.Circle{CX: p.CX, CY: p.CY + p.VY, R: p.R}.Bounds()) {
		t.Fatal("test setup: shot would not reach the cannon")
	}

	m.stepEnemyProjectiles()

	if m.Bunkers().Len() != before-1 {
		t.Errorf("Bunkers().Len() = %d, expected %d", m.Bunkers().Len(), before-1)
	}
	if m.Health() != 3 {
		t.Errorf("Health() = %d, expected 3", m.Health())
	}
	if m.EnemyProjectiles() != 0 {
		t.Errorf("EnemyProjectiles() = %d, expected 0", m.EnemyProjectiles())
	}
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	rec := &recordingRenderer{}
	m := newTestMatch(t, WithRenderer(rec))
	injectShot(m, SideEnemy, 18, 440, 5)
	m.stepEnemyProjectiles()

	if m.Health() != 2 {
		t.Errorf("Health() = %d, expected 2", m.Health())
	}
	if got := rec.health[len(rec.health)-1]; got != 2 {
		t.Errorf("last health display = %d, expected 2", got)
	}
	if m.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", m.Phase())
	}
}

func TestGameOverOnce(t *testing.T) {
	rec := &recordingRenderer{}
	m := newTestMatch(t, WithRenderer(rec))
	m.player.Health = 1
	for range 3 {
		injectShot(m, SideEnemy, 18, 440, 5)
	}
	m.stepEnemyProjectiles()

	if m.Health() != 0 {
		t.Errorf("Health() = %d, expected 0", m.Health())
	}
	if m.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, expected game over", m.Phase())
	}
	if m.EnemyProjectiles() != 0 {
		t.Errorf("EnemyProjectiles() = %d, expected 0 after game over", m.EnemyProjectiles())
	}

	// Later hits are no-ops
	injectShot(m, SideEnemy, 18, 440, 5)
	m.stepEnemyProjectiles()
	m.Advance(time.Second)
	if m.Health() != 0 {
		t.Errorf("Health() = %d after game over, expected 0", m.Health())
	}

	gameOvers := 0
	for _, s := range rec.texts {
		if s == MsgGameOver {
			gameOvers++
		}
	}
	if gameOvers != 1 {
		t.Errorf("game over shown %d times, expected 1", gameOvers)
	}
}

func TestEnemyFireCadence(t *testing.T) {
	m := newTestMatch(t)

	m.Advance(1099 * time.Millisecond)
	if m.EnemyProjectiles() != 0 {
		t.Errorf("EnemyProjectiles() before 1100ms = %d, expected 0", m.EnemyProjectiles())
	}
	m.Advance(time.Millisecond)
	if m.EnemyProjectiles() != 1 {
		t.Errorf("EnemyProjectiles() at 1100ms = %d, expected 1", m.EnemyProjectiles())
	}

	p := m.enemyShots[0]
	if p.VY != 5 || p.CY != 84 {
		t.Errorf("enemy shot vy=%v cy=%v, expected vy=5 cy=84", p.VY, p.CY)
	}
}

func TestEnemyFireStopsWhenFormationEmpty(t *testing.T) {
	m := newTestMatch(t)
	m.formation.Clear()
	m.enemyFire()
	if m.EnemyProjectiles() != 0 {
		t.Errorf("EnemyProjectiles() = %d, expected 0", m.EnemyProjectiles())
	}
}
