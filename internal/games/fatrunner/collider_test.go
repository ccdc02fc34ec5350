package fatrunner

import (
	"testing"

	"github.com/vovakirdan/fat-runner/internal/core"
)

// Player in lane 2 of a 640x368 playfield, as placed by the sim.
var testPlayer = core.Square(262.4, 236.8, 115.2)

func testCollider() Collider {
	return Collider{
		PlayerHitbox: 0.65,
		ObjectHitbox: 0.9,
		FallSpeed:    3,
		DespawnY:     468,
	}
}

func food(id ObjectID, lane int, y float64) FallingObject {
	return FallingObject{ID: id, Kind: "pizza", Lane: lane, X: float64(lane) * 128, Y: y, Size: 128}
}

func TestAdvanceMovesByDifficulty(t *testing.T) {
	c := testCollider()
	res := c.Advance([]FallingObject{food(1, 0, 0)}, testPlayer, 2.0)

	if len(res.Remaining) != 1 {
		t.Fatalf("remaining = %d, want 1", len(res.Remaining))
	}
	if got := res.Remaining[0].Y; got != 6 {
		t.Errorf("y = %v, want 6", got)
	}
}

func TestAdvanceDetectsOverlapInPlayerLane(t *testing.T) {
	c := testCollider()
	objs := []FallingObject{
		food(1, 2, 200), // Lands on the player
		food(2, 3, 200), // Same height, next lane
		food(3, 2, -128),
	}
	res := c.Advance(objs, testPlayer, 1.0)

	if len(res.Hits) != 1 || res.Hits[0].ID != 1 {
		t.Fatalf("hits = %+v, want only object 1", res.Hits)
	}
	if len(res.Remaining) != 2 {
		t.Fatalf("remaining = %d, want 2", len(res.Remaining))
	}
	for _, o := range res.Remaining {
		if o.ID == 1 {
			t.Error("hit object still falling")
		}
	}
}

func TestAdvanceResolvesEveryOverlap(t *testing.T) {
	c := testCollider()
	objs := []FallingObject{food(1, 2, 200), food(2, 2, 180)}
	res := c.Advance(objs, testPlayer, 1.0)

	if len(res.Hits) != 2 {
		t.Errorf("hits = %d, want 2", len(res.Hits))
	}
	if len(res.Remaining) != 0 {
		t.Errorf("remaining = %d, want 0", len(res.Remaining))
	}
}

func TestAdvanceDespawnsBelowPlayfield(t *testing.T) {
	c := testCollider()
	objs := []FallingObject{food(1, 0, 464), food(2, 0, 466)}
	res := c.Advance(objs, testPlayer, 1.0)

	if res.Despawned != 1 {
		t.Errorf("despawned = %d, want 1", res.Despawned)
	}
	if len(res.Remaining) != 1 || res.Remaining[0].ID != 1 {
		t.Errorf("remaining = %+v, want object 1 at y=467", res.Remaining)
	}
	if len(res.Hits) != 0 {
		t.Errorf("hits = %d, want 0", len(res.Hits))
	}
}

func TestOverlapsUsesInsetBoxes(t *testing.T) {
	c := testCollider()
	// Full boxes touch the player's top edge but the inset boxes do not.
	grazing := food(1, 2, 236.8-120)
	if !grazing.Box().Intersects(testPlayer) {
		t.Fatal("full boxes should overlap")
	}
	if c.Overlaps(testPlayer, grazing) {
		t.Error("inset boxes should not overlap on a graze")
	}
}
