// Package scene implements the in-memory element store: the canonical model
// of every placed element in the active layout, with identity, hierarchy,
// and synchronous mutation primitives.
//
// The store is single-writer by contract; all mutation happens on the
// editor's event loop, so no locking is carried here. The store does not
// record history itself — callers pair mutations with an explicit history
// record when they want undoability.
package scene

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// EventKind classifies a store notification.
type EventKind string

// Store event kinds.
const (
	EventCreated  EventKind = "created"
	EventUpdated  EventKind = "updated"
	EventDeleted  EventKind = "deleted"
	EventRestored EventKind = "restored"
)

// Event is delivered to subscribers after each completed mutation.
type Event struct {
	Kind      EventKind
	ElementID string
}

// Recorder receives a change record for every mutation, so the persistence
// host can feed the sync log. A nil recorder disables change capture.
type Recorder func(types.ChangeRecord)

// Store owns the elements of one layout. All relations between elements are
// id references resolved by lookup; the store is the sole owner of element
// memory.
type Store struct {
	layout    *types.Layout
	listeners map[int]func(Event)
	nextSub   int
	recorder  Recorder
}

// New creates a store over the given layout. The store takes ownership of
// the layout and its elements; callers must not mutate them directly.
func New(layout *types.Layout) *Store {
	if layout.Elements == nil {
		layout.Elements = make(map[string]*types.Element)
	}
	return &Store{
		layout:    layout,
		listeners: make(map[int]func(Event)),
	}
}

// SetRecorder installs the change-record hook. Pass nil to disable.
func (s *Store) SetRecorder(r Recorder) { s.recorder = r }

// Layout returns the layout the store operates on.
func (s *Store) Layout() *types.Layout { return s.layout }

// Len returns the number of elements in the store.
func (s *Store) Len() int { return len(s.layout.Elements) }

// Subscribe registers a listener called after every mutation. The returned
// function removes the listener.
func (s *Store) Subscribe(fn func(Event)) func() {
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// notify delivers ev to every subscriber.
func (s *Store) notify(ev Event) {
	for _, fn := range s.listeners {
		fn(ev)
	}
}

// record appends a change record through the installed recorder.
func (s *Store) record(changeType, elementID string) {
	if s.recorder == nil {
		return
	}
	s.recorder(types.ChangeRecord{
		ID:         uuid.NewString(),
		LayoutID:   s.layout.ID,
		ElementID:  elementID,
		ChangeType: changeType,
		Timestamp:  time.Now().UTC(),
	})
}

// Get returns the element with the given id, or false when absent.
func (s *Store) Get(id string) (*types.Element, bool) {
	e, ok := s.layout.Elements[id]
	return e, ok
}

// GetChildren returns the elements whose parent is parentID, in element
// order.
func (s *Store) GetChildren(parentID string) []*types.Element {
	var children []*types.Element
	for _, id := range s.layout.ElementOrder {
		e, ok := s.layout.Elements[id]
		if ok && e.ParentID == parentID {
			children = append(children, e)
		}
	}
	return children
}

// Elements returns every element in element order. The slice is fresh but
// the elements are the store's own; treat them as read-only.
func (s *Store) Elements() []*types.Element {
	out := make([]*types.Element, 0, len(s.layout.ElementOrder))
	for _, id := range s.layout.ElementOrder {
		if e, ok := s.layout.Elements[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Create adds a new element from the given partial. Required fields are
// filled with validated defaults, the geometry is sanitized, a fresh id is
// assigned, and the element is appended to the paint order. A parent
// reference to a missing or non-table element is an error.
func (s *Store) Create(partial types.Element) (*types.Element, error) {
	e := partial.Clone()
	if !e.Kind.Valid() {
		return nil, fmt.Errorf("create element: %w: %q", types.ErrInvalidKind, e.Kind)
	}
	if e.ParentID != "" {
		parent, ok := s.layout.Elements[e.ParentID]
		if !ok {
			return nil, fmt.Errorf("create element: %w: missing %s", types.ErrInvalidParent, e.ParentID)
		}
		if !parent.Kind.CanOwnChildren() {
			return nil, fmt.Errorf("create element: %w: kind %s cannot own children",
				types.ErrInvalidParent, parent.Kind)
		}
	}

	e.ID = uuid.NewString()
	e.Visible = true
	if e.Width == 0 && e.Height == 0 {
		e.Width, e.Height = defaultSize(e.Kind)
	}
	if e.Kind.IsTable() && e.Capacity == 0 {
		e.Capacity = s.layout.Settings.DefaultTableCapacity
	}
	if e.ZIndex == 0 {
		e.ZIndex = s.maxZIndex() + 1
	}
	types.SanitizeElement(e)

	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	s.layout.Elements[e.ID] = e
	s.layout.ElementOrder = append(s.layout.ElementOrder, e.ID)
	s.layout.UpdatedAt = now

	s.record(types.ChangeCreate, e.ID)
	s.notify(Event{Kind: EventCreated, ElementID: e.ID})
	return e, nil
}

// Patch holds optional field updates for Update. Nil fields are left
// untouched.
type Patch struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64
	ZIndex   *int
	GroupID  *string
	Locked   *bool
	Visible  *bool
	Capacity *int
	Name     *string
	Notes    *string
	Color    *string
}

// Update applies the patch to the element with the given id, sanitizing the
// resulting geometry. Returns ErrElementNotFound for unknown ids.
func (s *Store) Update(id string, p Patch) (*types.Element, error) {
	e, ok := s.layout.Elements[id]
	if !ok {
		return nil, fmt.Errorf("update element %s: %w", id, types.ErrElementNotFound)
	}

	if p.X != nil {
		e.X = *p.X
	}
	if p.Y != nil {
		e.Y = *p.Y
	}
	if p.Width != nil {
		e.Width = *p.Width
	}
	if p.Height != nil {
		e.Height = *p.Height
	}
	if p.Rotation != nil {
		e.Rotation = *p.Rotation
	}
	if p.ZIndex != nil {
		e.ZIndex = *p.ZIndex
	}
	if p.GroupID != nil {
		e.GroupID = *p.GroupID
	}
	if p.Locked != nil {
		e.Locked = *p.Locked
	}
	if p.Visible != nil {
		e.Visible = *p.Visible
	}
	if p.Capacity != nil {
		e.Capacity = *p.Capacity
	}
	if p.Name != nil {
		e.Metadata.Name = *p.Name
	}
	if p.Notes != nil {
		e.Metadata.Notes = *p.Notes
	}
	if p.Color != nil {
		e.Metadata.Color = *p.Color
	}

	types.SanitizeElement(e)
	s.touch(e)

	s.record(types.ChangeUpdate, e.ID)
	s.notify(Event{Kind: EventUpdated, ElementID: e.ID})
	return e, nil
}

// SetPosition moves an element, clamping the position to the working area.
// This is the drag fast path; it skips the full sanitize pass and the
// change record, since a gesture writes positions every pointer tick and
// records one change at commit.
func (s *Store) SetPosition(id string, x, y float64) error {
	e, ok := s.layout.Elements[id]
	if !ok {
		return fmt.Errorf("set position %s: %w", id, types.ErrElementNotFound)
	}
	e.X = clampPosition(x)
	e.Y = clampPosition(y)
	s.touch(e)
	s.notify(Event{Kind: EventUpdated, ElementID: id})
	return nil
}

// CommitMove emits one update change record per listed element. Called once
// at drag commit, since SetPosition skips change capture on the per-tick
// path. Unknown ids are skipped.
func (s *Store) CommitMove(ids []string) {
	for _, id := range ids {
		if _, ok := s.layout.Elements[id]; ok {
			s.record(types.ChangeUpdate, id)
		}
	}
}

// Delete removes the element with the given id. Deleting a table cascades
// to its owned chairs: children are removed outright, never orphaned.
func (s *Store) Delete(id string) error {
	e, ok := s.layout.Elements[id]
	if !ok {
		return fmt.Errorf("delete element %s: %w", id, types.ErrElementNotFound)
	}

	doomed := []string{id}
	if e.Kind.CanOwnChildren() {
		for _, child := range s.GetChildren(id) {
			doomed = append(doomed, child.ID)
		}
	}

	for _, did := range doomed {
		delete(s.layout.Elements, did)
		s.removeFromOrder(did)
		s.record(types.ChangeDelete, did)
		s.notify(Event{Kind: EventDeleted, ElementID: did})
	}
	s.layout.UpdatedAt = time.Now().UTC()
	return nil
}

// SnapshotOf returns deep copies of the listed elements, keyed by id.
// Missing ids map to nil, marking the element as absent; ApplySnapshot
// interprets a nil entry as a delete.
func (s *Store) SnapshotOf(ids []string) map[string]*types.Element {
	snap := make(map[string]*types.Element, len(ids))
	for _, id := range ids {
		if e, ok := s.layout.Elements[id]; ok {
			snap[id] = e.Clone()
		} else {
			snap[id] = nil
		}
	}
	return snap
}

// ApplySnapshot restores the store to the captured state for every id in
// the snapshot: nil entries are deleted, others are replaced or re-created
// (re-created elements are appended to the paint order).
func (s *Store) ApplySnapshot(snap map[string]*types.Element) {
	for id, e := range snap {
		if e == nil {
			if _, ok := s.layout.Elements[id]; ok {
				delete(s.layout.Elements, id)
				s.removeFromOrder(id)
			}
			continue
		}
		if _, ok := s.layout.Elements[id]; !ok {
			s.layout.ElementOrder = append(s.layout.ElementOrder, id)
		}
		s.layout.Elements[id] = e.Clone()
	}
	s.layout.UpdatedAt = time.Now().UTC()
	s.notify(Event{Kind: EventRestored})
}

// touch stamps the element and layout as updated.
func (s *Store) touch(e *types.Element) {
	now := time.Now().UTC()
	e.UpdatedAt = now
	s.layout.UpdatedAt = now
}

// removeFromOrder drops id from the paint order.
func (s *Store) removeFromOrder(id string) {
	order := s.layout.ElementOrder
	for i, oid := range order {
		if oid == id {
			s.layout.ElementOrder = append(order[:i], order[i+1:]...)
			return
		}
	}
}

// maxZIndex returns the highest zIndex in the store, or zero when empty.
func (s *Store) maxZIndex() int {
	max := 0
	for _, e := range s.layout.Elements {
		if e.ZIndex > max {
			max = e.ZIndex
		}
	}
	return max
}

// clampPosition bounds a coordinate to the working area.
func clampPosition(v float64) float64 {
	if v < -types.MaxPosition {
		return -types.MaxPosition
	}
	if v > types.MaxPosition {
		return types.MaxPosition
	}
	return v
}

// defaultSize returns the default footprint for a kind created without
// explicit dimensions.
func defaultSize(kind types.ElementKind) (w, h float64) {
	switch {
	case kind == types.KindChair:
		return 20, 20
	case kind == types.KindRoundTable:
		return 120, 120
	case kind.IsTable():
		return 160, 90
	case kind == types.KindZone:
		return 300, 300
	case kind == types.KindWall:
		return 200, 10
	case kind == types.KindDoor:
		return 80, 20
	case kind == types.KindOutlet:
		return 15, 15
	case kind == types.KindCable:
		return 100, 10
	default:
		return 50, 50
	}
}
