package invaders

import "math"

// Snapshot contains the observable match state for replay and determinism checks.
// Positions are stored in thousandths of a playfield unit so the snapshot uses
// integers only.
type Snapshot struct {
	Tick     int64 // Match clock in microseconds
	Phase    int
	Level    int
	Selected int
	Health   int
	Kills    int

	PlayerX        int
	FormationSpeed int

	// Each enemy is 2 ints: X, Y
	EnemyCount int
	EnemyData  []int

	// Each block is 2 ints: X, Y
	BunkerCount int
	BunkerData  []int

	// Each shot is 2 ints: CX, CY
	PlayerShotData []int
	EnemyShotData  []int

	RNGState uint64
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current match state.
func (m *Match) Snapshot() Snapshot {
	enemies := m.formation.Enemies()
	enemyData := make([]int, 0, len(enemies)*2)
	for _, e := range enemies {
		enemyData = append(enemyData, milli(e.X), milli(e.Y))
	}

	blocks := m.bunkers.Blocks()
	bunkerData := make([]int, 0, len(blocks)*2)
	for _, b := range blocks {
		bunkerData = append(bunkerData, milli(b.X), milli(b.Y))
	}

	return Snapshot{
		Tick:     m.sched.Now().Microseconds(),
		Phase:    int(m.phase),
		Level:    int(m.level),
		Selected: int(m.selected),
		Health:   m.player.Health,
		Kills:    m.kills,

		PlayerX:        milli(m.player.X),
		FormationSpeed: milli(m.formation.Speed()),

		EnemyCount:  len(enemies),
		EnemyData:   enemyData,
		BunkerCount: len(blocks),
		BunkerData:  bunkerData,

		PlayerShotData: shotData(m.playerShots),
		EnemyShotData:  shotData(m.enemyShots),

		RNGState: m.rng.State(),
	}
}

func shotData(shots []*Projectile) []int {
	data := make([]int, 0, len(shots)*2)
	for _, p := range shots {
		data = append(data, milli(p.CX), milli(p.CY))
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Selected)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FormationSpeed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BunkerCount)    //#nosec G115 -- hash computation

	for _, data := range [][]int{snap.EnemyData, snap.BunkerData, snap.PlayerShotData, snap.EnemyShotData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + snap.RNGState

	return h
}
