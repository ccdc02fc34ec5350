package fatrunner

import (
	"github.com/vovakirdan/fat-runner/internal/config"
	"github.com/vovakirdan/fat-runner/internal/core"
)

// Kind names a food type, e.g. "coxinha".
type Kind string

// ObjectID identifies a falling object within a session.
type ObjectID uint64

// FallingObject is one piece of food dropping down a lane.
type FallingObject struct {
	ID   ObjectID
	Wave uint64 // Wave the object was spawned in
	Kind Kind
	Lane int
	X    float64 // Left edge, fixed at spawn
	Y    float64 // Top edge, grows every tick
	Size float64
}

// Box returns the object's full bounding box.
func (o FallingObject) Box() core.RectF {
	return core.Square(o.X, o.Y, o.Size)
}

// HealTable maps kinds to the health they restore.
type HealTable struct {
	amounts  map[Kind]float64
	fallback float64
}

// NewHealTable builds the table from the objects config.
func NewHealTable(cfg config.ObjectsConfig) HealTable {
	amounts := make(map[Kind]float64, len(cfg.Kinds))
	for name, heal := range cfg.HealTable() {
		amounts[Kind(name)] = heal
	}
	return HealTable{amounts: amounts, fallback: cfg.DefaultHeal}
}

// Heal returns the heal amount for a kind, or the default for unknown kinds.
func (h HealTable) Heal(k Kind) float64 {
	if amount, ok := h.amounts[k]; ok {
		return amount
	}
	return h.fallback
}

// kindsFrom converts configured names to kinds, keeping their order.
func kindsFrom(cfg config.ObjectsConfig) []Kind {
	names := cfg.KindNames()
	kinds := make([]Kind, len(names))
	for i, n := range names {
		kinds[i] = Kind(n)
	}
	return kinds
}
