package types

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// templateSeed describes one starter element placed by a layout template.
type templateSeed struct {
	kind     ElementKind
	x, y     float64
	w, h     float64
	capacity int
	name     string
}

// layoutTemplates maps template names to their starter elements. Positions
// assume the default canvas dimensions.
var layoutTemplates = map[string][]templateSeed{
	"banquet": {
		{kind: KindRoundTable, x: 400, y: 300, w: 120, h: 120, capacity: 8, name: "Table 1"},
		{kind: KindRoundTable, x: 800, y: 300, w: 120, h: 120, capacity: 8, name: "Table 2"},
		{kind: KindRoundTable, x: 400, y: 700, w: 120, h: 120, capacity: 8, name: "Table 3"},
		{kind: KindRoundTable, x: 800, y: 700, w: 120, h: 120, capacity: 8, name: "Table 4"},
		{kind: KindRectTable, x: 550, y: 80, w: 300, h: 90, capacity: 6, name: "Head table"},
		{kind: KindZone, x: 1100, y: 500, w: 400, h: 400, name: "Dance floor"},
	},
	"ceremony": {
		{kind: KindRectTable, x: 900, y: 100, w: 200, h: 80, name: "Altar"},
		{kind: KindZone, x: 700, y: 300, w: 600, h: 800, name: "Seating"},
		{kind: KindDoor, x: 960, y: 1400, w: 80, h: 20, name: "Entrance"},
	},
}

// TemplateNames returns the names of the available layout templates.
func TemplateNames() []string {
	names := make([]string, 0, len(layoutTemplates))
	for name := range layoutTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewLayoutFromTemplate creates a layout pre-populated with the named
// template's starter elements. Unknown template names are an error.
func NewLayoutFromTemplate(name, template string) (*Layout, error) {
	seeds, ok := layoutTemplates[template]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", template)
	}
	l := NewLayout(name)
	for i, s := range seeds {
		e := &Element{
			ID:        uuid.NewString(),
			Kind:      s.kind,
			X:         s.x,
			Y:         s.y,
			Width:     s.w,
			Height:    s.h,
			ZIndex:    i,
			Visible:   true,
			Capacity:  s.capacity,
			Metadata:  ElementMetadata{Name: s.name},
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.CreatedAt,
		}
		SanitizeElement(e)
		l.Elements[e.ID] = e
		l.ElementOrder = append(l.ElementOrder, e.ID)
	}
	return l, nil
}
