package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// el builds a test element with the given id, kind and rectangle.
func el(id string, kind types.ElementKind, x, y, w, h float64) *types.Element {
	return &types.Element{
		ID: id, Kind: kind,
		X: x, Y: y, Width: w, Height: h,
		Visible: true,
	}
}

func TestCollideOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b *types.Element
		want bool
	}{
		{
			name: "10 unit overlap collides",
			a:    el("a", types.KindDecoration, 0, 0, 50, 50),
			b:    el("b", types.KindDecoration, 40, 0, 50, 50),
			want: true,
		},
		{
			name: "edge-touching elements do not collide",
			a:    el("a", types.KindDecoration, 0, 0, 50, 50),
			b:    el("b", types.KindDecoration, 50, 0, 50, 50),
			want: false,
		},
		{
			name: "5 unit gap does not collide",
			a:    el("a", types.KindDecoration, 0, 0, 50, 50),
			b:    el("b", types.KindDecoration, 55, 0, 50, 50),
			want: false,
		},
		{
			name: "vertical separation does not collide",
			a:    el("a", types.KindDecoration, 0, 0, 50, 50),
			b:    el("b", types.KindDecoration, 0, 60, 50, 50),
			want: false,
		},
		{
			name: "same id never collides",
			a:    el("a", types.KindDecoration, 0, 0, 50, 50),
			b:    el("a", types.KindDecoration, 10, 10, 50, 50),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collide(tt.a, tt.b, DefaultBuffer))
		})
	}
}

func TestCollideExclusions(t *testing.T) {
	t.Run("parent and child never collide", func(t *testing.T) {
		table := el("t1", types.KindRoundTable, 100, 100, 120, 120)
		chair := el("c1", types.KindChair, 110, 110, 20, 20)
		chair.ParentID = "t1"

		assert.False(t, Collide(table, chair, DefaultBuffer))
		assert.False(t, Collide(chair, table, DefaultBuffer))
	})

	t.Run("shared group never collides", func(t *testing.T) {
		a := el("a", types.KindDecoration, 0, 0, 50, 50)
		b := el("b", types.KindDecoration, 10, 10, 50, 50)
		a.GroupID = "g1"
		b.GroupID = "g1"

		assert.False(t, Collide(a, b, DefaultBuffer))
	})

	t.Run("distinct groups still collide", func(t *testing.T) {
		a := el("a", types.KindDecoration, 0, 0, 50, 50)
		b := el("b", types.KindDecoration, 10, 10, 50, 50)
		a.GroupID = "g1"
		b.GroupID = "g2"

		assert.True(t, Collide(a, b, DefaultBuffer))
	})

	t.Run("zones never participate", func(t *testing.T) {
		zone := el("z", types.KindZone, 0, 0, 500, 500)
		wall := el("w", types.KindWall, 100, 100, 200, 10)

		assert.False(t, Collide(zone, wall, DefaultBuffer))
		assert.False(t, Collide(wall, zone, DefaultBuffer))
	})
}

func TestCollideRotatedBounds(t *testing.T) {
	// A 100x20 wall rotated 90 degrees occupies a 20x100 footprint around
	// its center, reaching elements its unrotated rectangle would miss.
	wall := el("w", types.KindWall, 0, 40, 100, 20)
	wall.Rotation = 90
	probe := el("p", types.KindDecoration, 30, 95, 20, 20)

	require.True(t, Collide(wall, probe, DefaultBuffer))

	wall.Rotation = 0
	assert.False(t, Collide(wall, probe, DefaultBuffer))
}

// TestCollideSymmetric checks collide(a,b) == collide(b,a) over arbitrary
// geometry and relation wiring.
func TestCollideSymmetric(t *testing.T) {
	kinds := []types.ElementKind{
		types.KindRoundTable, types.KindChair, types.KindZone,
		types.KindWall, types.KindDecoration,
	}
	coord := rapid.Float64Range(-200, 200)
	size := rapid.Float64Range(10, 150)

	rapid.Check(t, func(t *rapid.T) {
		a := el("a", rapid.SampledFrom(kinds).Draw(t, "kindA"),
			coord.Draw(t, "ax"), coord.Draw(t, "ay"),
			size.Draw(t, "aw"), size.Draw(t, "ah"))
		b := el("b", rapid.SampledFrom(kinds).Draw(t, "kindB"),
			coord.Draw(t, "bx"), coord.Draw(t, "by"),
			size.Draw(t, "bw"), size.Draw(t, "bh"))
		a.Rotation = rapid.Float64Range(0, 359).Draw(t, "arot")
		if rapid.Bool().Draw(t, "parented") {
			b.ParentID = "a"
		}
		if rapid.Bool().Draw(t, "grouped") {
			a.GroupID, b.GroupID = "g", "g"
		}

		if Collide(a, b, DefaultBuffer) != Collide(b, a, DefaultBuffer) {
			t.Fatalf("collide is not symmetric for %+v and %+v", a, b)
		}
	})
}

func TestFindCollisions(t *testing.T) {
	all := []*types.Element{
		el("a", types.KindDecoration, 0, 0, 50, 50),
		el("b", types.KindDecoration, 40, 0, 50, 50),
		el("c", types.KindDecoration, 45, 45, 50, 50),
		el("far", types.KindDecoration, 1000, 1000, 50, 50),
	}

	hits := FindCollisions("a", all, DefaultBuffer)
	assert.ElementsMatch(t, []string{"b", "c"}, hits)

	assert.Nil(t, FindCollisions("missing", all, DefaultBuffer))
}

func TestFindAllCollisionsDedup(t *testing.T) {
	// Three mutually overlapping elements produce exactly three pairs.
	all := []*types.Element{
		el("a", types.KindDecoration, 0, 0, 50, 50),
		el("b", types.KindDecoration, 10, 0, 50, 50),
		el("c", types.KindDecoration, 20, 0, 50, 50),
	}

	pairs := FindAllCollisions(all, DefaultBuffer)
	require.Len(t, pairs, 3)

	seen := make(map[Pair]bool)
	for _, p := range pairs {
		assert.Less(t, p.A, p.B, "pair %v should be canonical", p)
		assert.False(t, seen[p], "pair %v reported twice", p)
		seen[p] = true
	}
}
