package fatrunner

// Autopilot is a headless policy that steers toward the gap of the nearest
// incoming wave. It moves at most one lane per decision.
type Autopilot struct {
	// Every is the number of ticks between decisions. Values below 1 mean
	// every tick.
	Every int
}

// Decide returns -1, 0 or +1: the lane change toward the gap of the lowest
// wave that has not yet passed the player. Objects are placed in lanes by
// their on-screen position.
func (a Autopilot) Decide(snap Snapshot) int {
	var (
		threat   uint64
		lowestY  float64
		occupied = make(map[uint64]map[int]bool)
		lanes    = NewLaneModel(len(snap.LaneX), snap.LaneWidth*float64(len(snap.LaneX)))
	)
	for _, obj := range snap.Objects {
		if obj.Y >= snap.Player.Bottom() {
			continue
		}
		if occupied[obj.Wave] == nil {
			occupied[obj.Wave] = make(map[int]bool)
		}
		occupied[obj.Wave][lanes.LaneAt(obj.Box().CenterX())] = true
		if threat == 0 || obj.Y > lowestY {
			threat, lowestY = obj.Wave, obj.Y
		}
	}
	if threat == 0 {
		return 0
	}

	gap := -1
	for lane := range snap.LaneX {
		if occupied[threat][lane] {
			continue
		}
		// Prefer the free lane closest to the player.
		if gap < 0 || abs(lane-snap.Lane) < abs(gap-snap.Lane) {
			gap = lane
		}
	}
	switch {
	case gap < 0 || gap == snap.Lane:
		return 0
	case gap > snap.Lane:
		return 1
	default:
		return -1
	}
}

// Drive applies one decision to a playing session when one is due.
func (a Autopilot) Drive(s *Sim) {
	snap := s.Snapshot()
	if a.Every > 1 && snap.Tick%a.Every != 0 {
		return
	}
	if d := a.Decide(snap); d != 0 {
		s.MoveLane(d)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
