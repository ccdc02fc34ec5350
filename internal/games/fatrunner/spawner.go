package fatrunner

import (
	"time"

	"github.com/vovakirdan/fat-runner/internal/config"
)

// Rand is the randomness the spawner draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawner decides when a wave is due and what it contains.
type Spawner struct {
	rng   Rand
	kinds []Kind
	cfg   config.SpawnerConfig
}

// NewSpawner creates a spawner drawing kinds uniformly from kinds.
func NewSpawner(rng Rand, kinds []Kind, cfg config.SpawnerConfig) *Spawner {
	return &Spawner{rng: rng, kinds: kinds, cfg: cfg}
}

// Interval returns the time between waves at the given difficulty.
func (s *Spawner) Interval(difficulty float64) time.Duration {
	return config.SpawnInterval(s.cfg, difficulty)
}

// ShouldSpawn reports whether more than one interval has passed since lastSpawn.
func (s *Spawner) ShouldSpawn(now, lastSpawn time.Duration, difficulty float64) bool {
	return now-lastSpawn > s.Interval(difficulty)
}

// Wave spawns one object in every lane except a single random gap lane.
// Objects start one size above the playfield. IDs are taken from nextID,
// which is advanced past the last one used.
//
// The gap is not guaranteed to be reachable from the player's lane.
func (s *Spawner) Wave(lanes LaneModel, wave uint64, nextID *ObjectID) (objects []FallingObject, gap int) {
	gap = s.rng.Intn(lanes.Count())
	size := lanes.Width()

	objects = make([]FallingObject, 0, lanes.Count()-1)
	for lane := 0; lane < lanes.Count(); lane++ {
		if lane == gap {
			continue
		}
		*nextID++
		objects = append(objects, FallingObject{
			ID:   *nextID,
			Wave: wave,
			Kind: s.kinds[s.rng.Intn(len(s.kinds))],
			Lane: lane,
			X:    lanes.LaneToX(lane),
			Y:    -size,
			Size: size,
		})
	}
	return objects, gap
}
