package types

import (
	"fmt"
	"math"
)

// ValidateLayout checks the structural invariants of a layout and every
// contained element. Any failure rejects the whole object; callers must not
// use a layout that failed validation. The returned error wraps
// ErrInvalidLayout and names the first offending field.
func ValidateLayout(l *Layout) error {
	if l == nil {
		return fmt.Errorf("%w: nil layout", ErrInvalidLayout)
	}
	if l.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidLayout)
	}
	if l.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLayout)
	}
	if l.Dimensions.Width <= 0 || l.Dimensions.Height <= 0 {
		return fmt.Errorf("%w: non-positive dimensions", ErrInvalidLayout)
	}
	if l.Dimensions.Unit != UnitMeters && l.Dimensions.Unit != UnitFeet {
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidLayout, l.Dimensions.Unit)
	}
	if l.Settings.GridSize <= 0 {
		return fmt.Errorf("%w: non-positive grid size", ErrInvalidLayout)
	}
	if l.Elements == nil {
		return fmt.Errorf("%w: nil element map", ErrInvalidLayout)
	}

	// ElementOrder must cover Elements exactly once each.
	if len(l.ElementOrder) != len(l.Elements) {
		return fmt.Errorf("%w: element order covers %d of %d elements",
			ErrInvalidLayout, len(l.ElementOrder), len(l.Elements))
	}
	seen := make(map[string]bool, len(l.ElementOrder))
	for _, id := range l.ElementOrder {
		if seen[id] {
			return fmt.Errorf("%w: duplicate id %s in element order", ErrInvalidLayout, id)
		}
		seen[id] = true
		if _, ok := l.Elements[id]; !ok {
			return fmt.Errorf("%w: element order references missing id %s", ErrInvalidLayout, id)
		}
	}

	for id, e := range l.Elements {
		if err := validateElement(id, e, l); err != nil {
			return err
		}
	}
	return nil
}

// validateElement checks one element's invariants against its owning layout.
func validateElement(id string, e *Element, l *Layout) error {
	if e == nil {
		return fmt.Errorf("%w: nil element %s", ErrInvalidLayout, id)
	}
	if e.ID != id {
		return fmt.Errorf("%w: element keyed %s carries id %s", ErrInvalidLayout, id, e.ID)
	}
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: element %s: %v %q", ErrInvalidLayout, id, ErrInvalidKind, e.Kind)
	}
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("%w: element %s has non-positive size", ErrInvalidLayout, id)
	}
	if !isFinite(e.X) || !isFinite(e.Y) {
		return fmt.Errorf("%w: element %s has non-finite position", ErrInvalidLayout, id)
	}
	if e.X < -MaxPosition || e.X > MaxPosition || e.Y < -MaxPosition || e.Y > MaxPosition {
		return fmt.Errorf("%w: element %s is outside the working area", ErrInvalidLayout, id)
	}
	if e.Rotation < 0 || e.Rotation >= 360 {
		return fmt.Errorf("%w: element %s rotation %v outside [0,360)", ErrInvalidLayout, id, e.Rotation)
	}
	if e.ParentID != "" {
		parent, ok := l.Elements[e.ParentID]
		if !ok {
			return fmt.Errorf("%w: element %s: %v: missing %s",
				ErrInvalidLayout, id, ErrInvalidParent, e.ParentID)
		}
		if !parent.Kind.CanOwnChildren() {
			return fmt.Errorf("%w: element %s: %v: kind %s cannot own children",
				ErrInvalidLayout, id, ErrInvalidParent, parent.Kind)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
