package fatrunner

import "github.com/vovakirdan/fat-runner/internal/core"

// LaneModel maps discrete lane indices to horizontal pixel positions.
// The zero value is not usable; build one with NewLaneModel.
type LaneModel struct {
	count int
	width float64
}

// NewLaneModel splits a viewport of the given pixel width into count lanes.
func NewLaneModel(count int, viewportW float64) LaneModel {
	if count < 1 {
		count = 1
	}
	return LaneModel{count: count, width: viewportW / float64(count)}
}

// Count returns the number of lanes.
func (l LaneModel) Count() int {
	return l.count
}

// Width returns the width of a single lane in pixels.
func (l LaneModel) Width() float64 {
	return l.width
}

// Middle returns the lane a session starts in.
func (l LaneModel) Middle() int {
	return l.count / 2
}

// LaneToX returns the left edge of the lane in pixels.
func (l LaneModel) LaneToX(lane int) float64 {
	return float64(lane) * l.width
}

// CenterX returns the horizontal centre of the lane in pixels.
func (l LaneModel) CenterX(lane int) float64 {
	return l.LaneToX(lane) + l.width/2
}

// MoveLane returns current+delta clamped to the valid lanes.
// Moves past either edge stop at the edge; they never wrap.
func (l LaneModel) MoveLane(current, delta int) int {
	return core.Clamp(current+delta, 0, l.count-1)
}

// LaneAt returns the lane containing pixel x, clamped to the valid lanes.
func (l LaneModel) LaneAt(x float64) int {
	if l.width <= 0 {
		return 0
	}
	return core.Clamp(int(x/l.width), 0, l.count-1)
}

// Positions returns the left edge of every lane.
func (l LaneModel) Positions() []float64 {
	xs := make([]float64, l.count)
	for i := range xs {
		xs[i] = l.LaneToX(i)
	}
	return xs
}
