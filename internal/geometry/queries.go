package geometry

import (
	"math"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// BoundsOfSet returns the minimal box enclosing every listed element, and
// false when none of the ids resolve.
func BoundsOfSet(ids []string, all map[string]*types.Element) (Bounds, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false

	for _, id := range ids {
		e, ok := all[id]
		if !ok {
			continue
		}
		found = true
		b := BoundsOf(e)
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.MaxX())
		maxY = math.Max(maxY, b.MaxY())
	}
	if !found {
		return Bounds{}, false
	}
	return Bounds{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// ElementsInRect returns the elements captured by a query rectangle, in
// input order. Zones are captured by center-point containment; every other
// kind must lie fully inside the rectangle.
func ElementsInRect(rect Bounds, all []*types.Element) []*types.Element {
	var hits []*types.Element
	for _, e := range all {
		b := BoundsOf(e)
		if e.Kind == types.KindZone {
			if rect.containsPoint(b.CenterX(), b.CenterY()) {
				hits = append(hits, e)
			}
			continue
		}
		if rect.contains(b) {
			hits = append(hits, e)
		}
	}
	return hits
}

// OverlapArea returns the area shared by the two elements' bounds. Used for
// tie-break heuristics; it does not gate collision.
func OverlapArea(a, b *types.Element) float64 {
	ab, bb := BoundsOf(a), BoundsOf(b)
	w := math.Min(ab.MaxX(), bb.MaxX()) - math.Max(ab.X, bb.X)
	h := math.Min(ab.MaxY(), bb.MaxY()) - math.Max(ab.Y, bb.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Nearest returns the element closest to target by Euclidean distance
// between centers, among those passing the optional filter. A nil filter
// accepts every candidate. Returns nil when no candidate qualifies.
func Nearest(target *types.Element, all []*types.Element, filter func(*types.Element) bool) *types.Element {
	var best *types.Element
	bestDist := math.Inf(1)

	for _, e := range all {
		if e.ID == target.ID {
			continue
		}
		if filter != nil && !filter(e) {
			continue
		}
		dx := e.CenterX() - target.CenterX()
		dy := e.CenterY() - target.CenterY()
		d := math.Hypot(dx, dy)
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}
