package types

import (
	"math"
	"strings"
)

// Sanitization bounds. Every element written through the store or imported
// from an external source is clamped into these ranges.
const (
	// MaxPosition bounds the working area on both axes.
	MaxPosition = 10000.0

	// MinElementSize and MaxElementSize bound element width and height.
	MinElementSize = 10.0
	MaxElementSize = 5000.0

	// MaxNameLen and MaxDescriptionLen bound free-text fields on layouts
	// and element metadata.
	MaxNameLen        = 200
	MaxDescriptionLen = 2000

	// MinGridSize and MaxGridSize bound the layout grid setting.
	MinGridSize = 1.0
	MaxGridSize = 500.0

	// MinLayoutDimension and MaxLayoutDimension bound canvas dimensions.
	MinLayoutDimension = 100.0
	MaxLayoutDimension = 50000.0
)

// clamp constrains v to [lo, hi]. Non-finite values collapse to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeRotation maps an angle in degrees into [0, 360). Non-finite
// input normalizes to 0.
func NormalizeRotation(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	// Adding 360 to a tiny negative remainder can round to exactly 360.
	if r >= 360 {
		r = 0
	}
	return r
}

// truncate limits s to max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// SanitizeElement clamps the element's geometry into the documented
// invariants in place: position within the bounded working area, size
// within [MinElementSize, MaxElementSize], rotation normalized to [0,360),
// zIndex floored to an integer. Free-text metadata is truncated. Applied on
// every create and import so externally supplied or legacy data cannot
// violate invariants.
func SanitizeElement(e *Element) {
	e.X = clamp(e.X, -MaxPosition, MaxPosition)
	e.Y = clamp(e.Y, -MaxPosition, MaxPosition)
	e.Width = clamp(e.Width, MinElementSize, MaxElementSize)
	e.Height = clamp(e.Height, MinElementSize, MaxElementSize)
	e.Rotation = NormalizeRotation(e.Rotation)
	if e.Capacity < 0 {
		e.Capacity = 0
	}
	if e.PowerRating < 0 || math.IsNaN(e.PowerRating) || math.IsInf(e.PowerRating, 0) {
		e.PowerRating = 0
	}
	e.Metadata.Name = truncate(e.Metadata.Name, MaxNameLen)
	e.Metadata.Notes = truncate(e.Metadata.Notes, MaxDescriptionLen)
}

// SanitizeLayout coerces a layout's own fields into bounds: truncates
// free-text fields, clamps dimensions and grid size, and defaults the unit
// and colors defensively. Elements are not touched; sanitize them
// individually on write.
func SanitizeLayout(l *Layout) {
	l.Name = truncate(strings.TrimSpace(l.Name), MaxNameLen)
	l.Description = truncate(l.Description, MaxDescriptionLen)

	l.Dimensions.Width = clamp(l.Dimensions.Width, MinLayoutDimension, MaxLayoutDimension)
	l.Dimensions.Height = clamp(l.Dimensions.Height, MinLayoutDimension, MaxLayoutDimension)
	switch l.Dimensions.Unit {
	case UnitMeters, UnitFeet:
	default:
		l.Dimensions.Unit = UnitMeters
	}

	l.Settings.GridSize = clamp(l.Settings.GridSize, MinGridSize, MaxGridSize)
	if l.Settings.DefaultTableCapacity <= 0 {
		l.Settings.DefaultTableCapacity = DefaultTableCapacity
	}
	if l.Settings.BackgroundColor == "" {
		l.Settings.BackgroundColor = DefaultBackgroundColor
	}

	if l.Elements == nil {
		l.Elements = make(map[string]*Element)
	}
	if l.ElementOrder == nil {
		l.ElementOrder = []string{}
	}
}
