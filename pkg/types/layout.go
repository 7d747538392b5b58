package types

import (
	"time"

	"github.com/google/uuid"
)

// Supported layout dimension units.
const (
	UnitMeters = "m"
	UnitFeet   = "ft"
)

// Dimensions describes the working canvas of a layout.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// LayoutSettings holds per-layout editing preferences.
type LayoutSettings struct {
	GridSize             float64 `json:"gridSize"`
	SnapToGrid           bool    `json:"snapToGrid"`
	DefaultTableCapacity int     `json:"defaultTableCapacity"`
	BackgroundColor      string  `json:"backgroundColor"`
}

// Default layout settings applied to new layouts and coerced onto
// sanitized ones.
const (
	DefaultGridSize        = 10.0
	DefaultTableCapacity   = 8
	DefaultBackgroundColor = "#ffffff"
	DefaultLayoutWidth     = 2000.0
	DefaultLayoutHeight    = 1500.0
)

// Layout is the aggregate root for one floor plan: every placed element
// keyed by id plus an explicit paint-order sequence.
//
// Elements and ElementOrder are kept consistent: every order entry refers to
// an existing element and every element appears in the order exactly once.
type Layout struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Description  string              `json:"description,omitempty"`
	Dimensions   Dimensions          `json:"dimensions"`
	Elements     map[string]*Element `json:"elements"`
	ElementOrder []string            `json:"elementOrder"`
	Settings     LayoutSettings      `json:"settings"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// NewLayout creates an empty layout with default dimensions and settings.
func NewLayout(name string) *Layout {
	now := time.Now().UTC()
	return &Layout{
		ID:   uuid.NewString(),
		Name: name,
		Dimensions: Dimensions{
			Width:  DefaultLayoutWidth,
			Height: DefaultLayoutHeight,
			Unit:   UnitMeters,
		},
		Elements:     make(map[string]*Element),
		ElementOrder: []string{},
		Settings: LayoutSettings{
			GridSize:             DefaultGridSize,
			SnapToGrid:           true,
			DefaultTableCapacity: DefaultTableCapacity,
			BackgroundColor:      DefaultBackgroundColor,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the layout, including all elements.
func (l *Layout) Clone() *Layout {
	cp := *l
	cp.Elements = make(map[string]*Element, len(l.Elements))
	for id, e := range l.Elements {
		cp.Elements[id] = e.Clone()
	}
	cp.ElementOrder = make([]string, len(l.ElementOrder))
	copy(cp.ElementOrder, l.ElementOrder)
	return &cp
}

// LayoutSummary is the listing projection of a saved layout.
type LayoutSummary struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"savedAt"`
}
