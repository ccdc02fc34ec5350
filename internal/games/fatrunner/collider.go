package fatrunner

import "github.com/vovakirdan/fat-runner/internal/core"

// Collider moves falling objects and tests them against the player.
type Collider struct {
	PlayerHitbox float64 // Inset factor for the player box
	ObjectHitbox float64 // Inset factor for object boxes
	FallSpeed    float64 // Pixels per tick at difficulty 1
	DespawnY     float64 // Objects whose top reaches this line are dropped
}

// Resolution is the outcome of one movement pass.
type Resolution struct {
	Remaining []FallingObject // Still falling, in spawn order
	Hits      []FallingObject // Overlapped the player this tick
	Despawned int             // Fell past the bottom without a hit
}

// Overlaps reports whether the inset boxes of the player and object overlap.
func (c Collider) Overlaps(player core.RectF, obj FallingObject) bool {
	return player.Inset(c.PlayerHitbox).Intersects(obj.Box().Inset(c.ObjectHitbox))
}

// Advance moves every object down by FallSpeed*difficulty and resolves
// collisions against the player box at the new positions. Every overlapping
// object is reported, not just the first. The input slice is reused for
// Remaining.
func (c Collider) Advance(objects []FallingObject, player core.RectF, difficulty float64) Resolution {
	dy := c.FallSpeed * difficulty

	var res Resolution
	kept := objects[:0]
	for _, obj := range objects {
		obj.Y += dy

		if c.Overlaps(player, obj) {
			res.Hits = append(res.Hits, obj)
			continue
		}
		if obj.Y >= c.DespawnY {
			res.Despawned++
			continue
		}
		kept = append(kept, obj)
	}
	res.Remaining = kept
	return res
}
