package geometry

import (
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// DefaultBuffer is the symmetric erosion applied to both boxes before the
// overlap test. It is a tolerance so visually-touching elements are not
// flagged as colliding.
const DefaultBuffer = 0.05

// Collide reports whether a and b overlap for collision purposes.
//
// Exclusions, in order: an element never collides with itself; a parent and
// its child never collide; two elements sharing a non-empty group never
// collide; zones never participate in collision at all. Otherwise the test
// is strict AABB intersection of the eroded bounds.
func Collide(a, b *types.Element, buffer float64) bool {
	if a == nil || b == nil {
		return false
	}
	if a.ID == b.ID {
		return false
	}
	if a.ParentID == b.ID || b.ParentID == a.ID {
		return false
	}
	if a.GroupID != "" && a.GroupID == b.GroupID {
		return false
	}
	if a.Kind == types.KindZone || b.Kind == types.KindZone {
		return false
	}
	return BoundsOf(a).shrink(buffer).intersects(BoundsOf(b).shrink(buffer))
}

// FindCollisions returns the ids of every element in all colliding with the
// element identified by id. Returns nil if the id is not present.
func FindCollisions(id string, all []*types.Element, buffer float64) []string {
	var target *types.Element
	for _, e := range all {
		if e.ID == id {
			target = e
			break
		}
	}
	if target == nil {
		return nil
	}

	var hits []string
	for _, e := range all {
		if Collide(target, e, buffer) {
			hits = append(hits, e.ID)
		}
	}
	return hits
}

// Pair is one unordered colliding pair. A is always the smaller id under
// string ordering so each pair has a single canonical form.
type Pair struct {
	A string
	B string
}

// pairKey returns the canonical key for an unordered id pair.
func pairKey(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// FindAllCollisions returns every colliding pair among all, each unordered
// pair reported exactly once. The scan is O(n^2), acceptable at the tens to
// low hundreds of elements a layout holds; a spatial index can replace the
// inner loop behind this signature if layouts grow past that.
func FindAllCollisions(all []*types.Element, buffer float64) []Pair {
	seen := make(map[Pair]bool)
	var pairs []Pair
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if !Collide(all[i], all[j], buffer) {
				continue
			}
			key := pairKey(all[i].ID, all[j].ID)
			if seen[key] {
				continue
			}
			seen[key] = true
			pairs = append(pairs, key)
		}
	}
	return pairs
}
