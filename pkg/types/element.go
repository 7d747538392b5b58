package types

import "time"

// ElementKind identifies the variant of a placed element. The set is closed;
// unknown kinds are rejected by validation.
type ElementKind string

// Element kinds.
const (
	KindRoundTable  ElementKind = "round_table"
	KindRectTable   ElementKind = "rect_table"
	KindCustomTable ElementKind = "custom_table"
	KindChair       ElementKind = "chair"
	KindDecoration  ElementKind = "decoration"
	KindTextLabel   ElementKind = "text_label"
	KindZone        ElementKind = "zone"
	KindWall        ElementKind = "wall"
	KindDoor        ElementKind = "door"
	KindOutlet      ElementKind = "outlet"
	KindCable       ElementKind = "cable"
)

// validElementKinds is the set of recognized element kind values.
var validElementKinds = map[ElementKind]bool{
	KindRoundTable:  true,
	KindRectTable:   true,
	KindCustomTable: true,
	KindChair:       true,
	KindDecoration:  true,
	KindTextLabel:   true,
	KindZone:        true,
	KindWall:        true,
	KindDoor:        true,
	KindOutlet:      true,
	KindCable:       true,
}

// Valid reports whether the kind is one of the recognized variants.
func (k ElementKind) Valid() bool {
	return validElementKinds[k]
}

// IsTable reports whether the kind is one of the table variants.
func (k ElementKind) IsTable() bool {
	return k == KindRoundTable || k == KindRectTable || k == KindCustomTable
}

// CanOwnChildren reports whether elements of this kind may be referenced as
// a parent by other elements. Only table variants own children (chairs).
func (k ElementKind) CanOwnChildren() bool {
	return k.IsTable()
}

// IsElectrical reports whether the kind carries power attributes.
func (k ElementKind) IsElectrical() bool {
	return k == KindOutlet || k == KindCable
}

// ElementMetadata holds free-form display attributes for an element.
// Extra is an open extension bag for host-defined values.
type ElementMetadata struct {
	Name  string         `json:"name,omitempty"`
	Notes string         `json:"notes,omitempty"`
	Color string         `json:"color,omitempty"`
	Extra map[string]any `json:"extra,omitempty"`
}

// Element is an atomic placed object on the layout canvas.
//
// ParentID and GroupID are foreign-key style references resolved by lookup
// in the owning Layout; they are never structural pointers. Both act as
// collision exclusion keys: a parent never collides with its child, and two
// members of the same group never collide with each other.
type Element struct {
	ID       string      `json:"id"`
	Kind     ElementKind `json:"kind"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Rotation float64     `json:"rotation"` // degrees, normalized to [0,360)
	ZIndex   int         `json:"zIndex"`
	ParentID string      `json:"parentId,omitempty"`
	GroupID  string      `json:"groupId,omitempty"`
	Locked   bool        `json:"locked"`
	Visible  bool        `json:"visible"`

	// Table attributes; meaningful only when Kind.IsTable().
	Capacity int      `json:"capacity,omitempty"`
	Seats    []string `json:"seats,omitempty"`

	// Electrical attributes; meaningful only when Kind.IsElectrical().
	PowerRating float64 `json:"powerRating,omitempty"`
	ConnectedTo string  `json:"connectedTo,omitempty"`

	Metadata  ElementMetadata `json:"metadata"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CenterX returns the x coordinate of the element's center.
func (e *Element) CenterX() float64 { return e.X + e.Width/2 }

// CenterY returns the y coordinate of the element's center.
func (e *Element) CenterY() float64 { return e.Y + e.Height/2 }

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	cp := *e
	if e.Seats != nil {
		cp.Seats = make([]string, len(e.Seats))
		copy(cp.Seats, e.Seats)
	}
	if e.Metadata.Extra != nil {
		cp.Metadata.Extra = make(map[string]any, len(e.Metadata.Extra))
		for k, v := range e.Metadata.Extra {
			cp.Metadata.Extra[k] = v
		}
	}
	return &cp
}
