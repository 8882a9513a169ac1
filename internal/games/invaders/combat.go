package invaders

import "time"

// Fire requests a player shot at the current match time.
func (m *Match) Fire() bool {
	return m.FirePlayerProjectile(m.sched.Now())
}

// FirePlayerProjectile spawns a player shot if the fire gate lets it through.
// Rejections are silent apart from a debug log line.
func (m *Match) FirePlayerProjectile(now time.Duration) bool {
	if m.phase != PhasePlaying || m.player == nil || !m.player.Alive {
		return false
	}
	if m.bunkers.BlocksAbove(m.player.CenterX(), m.player.Y) {
		m.log.Debug("shot rejected", "reason", "under cover", "x", m.player.X)
		return false
	}
	if m.hasShot && now-m.lastShot < m.cfg.Shots.MinShotInterval() {
		m.log.Debug("shot rejected", "reason", "rate limit", "since_last", now-m.lastShot)
		return false
	}
	if len(m.playerShots) >= m.params.MaxPlayerBullets {
		m.log.Debug("shot rejected", "reason", "cap", "in_flight", len(m.playerShots))
		return false
	}

	p := &Projectile{
		Handle: m.arena.alloc(),
		Side:   SidePlayer,
		CX:     m.player.X + m.cfg.Player.MuzzleOffsetX,
		CY:     m.player.Y + m.cfg.Player.MuzzleOffsetY,
		R:      m.cfg.Shots.Radius,
		VY:     -m.cfg.Shots.PlayerSpeed,
	}
	m.playerShots = append(m.playerShots, p)
	m.out.DrawProjectile(p.Handle, p.Side, p.Circle())
	m.lastShot = now
	m.hasShot = true
	return true
}

// stepPlayerProjectiles moves player shots up and resolves enemy hits.
// A shot kills at most one enemy. Level clear is raised once, after all shots moved.
func (m *Match) stepPlayerProjectiles() {
	killed := false
	kept := m.playerShots[:0]
	for _, p := range m.playerShots {
		p.CY += p.VY
		if p.CY < 0 {
			m.out.RemoveProjectile(p.Handle)
			continue
		}

		hit := false
		bounds := p.Bounds()
		for _, e := range m.formation.Enemies() {
			if bounds.Overlaps(e.Box()) {
				m.formation.Destroy(e)
				m.kills++
				hit = true
				break
			}
		}
		if hit {
			killed = true
			m.out.RemoveProjectile(p.Handle)
			continue
		}

		m.out.UpdatePosition(p.Handle, p.CX, p.CY)
		kept = append(kept, p)
	}
	m.playerShots = kept

	if killed && m.formation.Len() == 0 {
		m.enterLevelClear()
	}
}

// stepEnemyProjectiles moves enemy shots down and resolves bunker and player hits.
// Bunkers are tested first; a shot absorbed by a bunker never reaches the player.
func (m *Match) stepEnemyProjectiles() {
	fieldH := m.cfg.Field.Height
	kept := m.enemyShots[:0]
	for i, p := range m.enemyShots {
		p.CY += p.VY
		if p.CY > fieldH {
			m.out.RemoveProjectile(p.Handle)
			continue
		}

		bounds := p.Bounds()
		if _, ok := m.bunkers.Absorb(bounds); ok {
			m.out.RemoveProjectile(p.Handle)
			continue
		}

		if m.player.Alive && bounds.Overlaps(m.player.Box()) {
			m.out.RemoveProjectile(p.Handle)
			m.player.Health--
			m.out.UpdateHealthDisplay(m.player.Health)
			if m.player.Health <= 0 {
				m.enemyShots = append(kept, m.enemyShots[i+1:]...)
				m.enterGameOver()
				return
			}
			continue
		}

		m.out.UpdatePosition(p.Handle, p.CX, p.CY)
		kept = append(kept, p)
	}
	m.enemyShots = kept
}

// enemyFire drops a shot from the bottom center of a random enemy.
func (m *Match) enemyFire() {
	if m.phase != PhasePlaying {
		return
	}
	e, ok := m.formation.PickRandom(m.rng)
	if !ok {
		return
	}
	p := &Projectile{
		Handle: m.arena.alloc(),
		Side:   SideEnemy,
		CX:     e.X + e.W/2,
		CY:     e.Y + e.H,
		R:      m.cfg.Shots.Radius,
		VY:     m.params.EnemyBulletSpeed,
	}
	m.enemyShots = append(m.enemyShots, p)
	m.out.DrawProjectile(p.Handle, p.Side, p.Circle())
}

// clearProjectiles removes every shot on the field.
func (m *Match) clearProjectiles() {
	for _, p := range m.playerShots {
		m.out.RemoveProjectile(p.Handle)
	}
	for _, p := range m.enemyShots {
		m.out.RemoveProjectile(p.Handle)
	}
	m.playerShots = nil
	m.enemyShots = nil
}
