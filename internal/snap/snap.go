// Package snap computes grid- and alignment-snapped positions for a moving
// element, together with the guide lines the UI renders while the snap is
// active.
package snap

import (
	"math"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/geometry"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// DefaultAlignThreshold is the distance within which a moving edge or
// center locks onto a sibling's, in layout units.
const DefaultAlignThreshold = 5.0

// Settings holds the snap configuration for the active editing session.
// A zero AlignThreshold means DefaultAlignThreshold; a negative value
// disables alignment snapping entirely.
type Settings struct {
	GridSize       float64
	SnapToGrid     bool
	AlignThreshold float64
}

// Axis identifies the orientation of a guide line.
type Axis int

// Guide axes. A vertical guide constrains x, a horizontal one constrains y.
const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// GuideKind describes what the guide locked onto.
type GuideKind string

// Guide kinds.
const (
	GuideEdge   GuideKind = "edge"
	GuideCenter GuideKind = "center"
)

// Guide is one active alignment line at Position along the given axis.
type Guide struct {
	Axis     Axis
	Kind     GuideKind
	Position float64
}

// Position is a candidate or corrected element position.
type Position struct {
	X float64
	Y float64
}

// Result carries the corrected position and the guides that produced it.
type Result struct {
	Position Position
	Guides   []Guide
}

// Calculate returns the snapped position for moving at the candidate
// position, against the other elements of the layout. Alignment snap wins
// over grid snap on an axis when both fire; the correction from alignment
// is always at most the threshold, tighter than a half grid step in
// practice. Pure with respect to its inputs.
func Calculate(moving *types.Element, candidate Position, others []*types.Element, settings Settings) Result {
	res := Result{Position: candidate}

	threshold := settings.AlignThreshold
	if threshold == 0 {
		threshold = DefaultAlignThreshold
	}

	if settings.SnapToGrid && settings.GridSize > 0 {
		res.Position.X = snapToGrid(candidate.X, settings.GridSize)
		res.Position.Y = snapToGrid(candidate.Y, settings.GridSize)
	}

	if threshold > 0 {
		movedX, guideX := alignAxis(candidate.X, moving.Width, verticalStops(moving, others), threshold)
		if guideX != nil {
			res.Position.X = movedX
			res.Guides = append(res.Guides, *guideX)
		}
		movedY, guideY := alignAxis(candidate.Y, moving.Height, horizontalStops(moving, others), threshold)
		if guideY != nil {
			res.Position.Y = movedY
			res.Guides = append(res.Guides, *guideY)
		}
	}

	return res
}

// snapToGrid rounds v to the nearest multiple of step.
func snapToGrid(v, step float64) float64 {
	return math.Round(v/step) * step
}

// stop is one sibling edge or center line a moving element can lock onto.
type stop struct {
	position float64
	kind     GuideKind
	axis     Axis
}

// verticalStops collects the x stops (left, center, right) of every element
// other than the moving one.
func verticalStops(moving *types.Element, others []*types.Element) []stop {
	var stops []stop
	for _, e := range others {
		if e.ID == moving.ID {
			continue
		}
		b := geometry.BoundsOf(e)
		stops = append(stops,
			stop{position: b.X, kind: GuideEdge, axis: AxisVertical},
			stop{position: b.CenterX(), kind: GuideCenter, axis: AxisVertical},
			stop{position: b.MaxX(), kind: GuideEdge, axis: AxisVertical},
		)
	}
	return stops
}

// horizontalStops collects the y stops (top, middle, bottom).
func horizontalStops(moving *types.Element, others []*types.Element) []stop {
	var stops []stop
	for _, e := range others {
		if e.ID == moving.ID {
			continue
		}
		b := geometry.BoundsOf(e)
		stops = append(stops,
			stop{position: b.Y, kind: GuideEdge, axis: AxisHorizontal},
			stop{position: b.CenterY(), kind: GuideCenter, axis: AxisHorizontal},
			stop{position: b.MaxY(), kind: GuideEdge, axis: AxisHorizontal},
		)
	}
	return stops
}

// alignAxis finds the closest stop within threshold for the moving span
// [origin, origin+size], tested against its leading edge, center, and
// trailing edge. Returns the corrected origin and the winning guide, or the
// input origin and nil when nothing is close enough.
func alignAxis(origin, size float64, stops []stop, threshold float64) (float64, *Guide) {
	type lock struct {
		origin float64
		guide  Guide
		dist   float64
	}
	best := lock{dist: math.Inf(1)}

	consider := func(current float64, s stop, corrected float64) {
		d := math.Abs(current - s.position)
		if d <= threshold && d < best.dist {
			best = lock{
				origin: corrected,
				guide:  Guide{Axis: s.axis, Kind: s.kind, Position: s.position},
				dist:   d,
			}
		}
	}

	for _, s := range stops {
		consider(origin, s, s.position)               // leading edge
		consider(origin+size/2, s, s.position-size/2) // center
		consider(origin+size, s, s.position-size)     // trailing edge
	}

	if math.IsInf(best.dist, 1) {
		return origin, nil
	}
	return best.origin, &best.guide
}
