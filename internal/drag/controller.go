// Package drag implements the drag-drop gesture controller: one state
// machine per editing session orchestrating group resolution, live position
// updates, snapping, collision feedback, and history recording for a single
// user-initiated move gesture.
package drag

import (
	"math"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/geometry"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/history"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/scene"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/snap"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// PointerEvent is platform-neutral pointer data: client coordinates plus
// the axis-constrain modifier ("shift" semantics). Mouse and touch sources
// feed the same delta computation.
type PointerEvent struct {
	X             float64
	Y             float64
	ConstrainAxis bool
}

// Selection provides the current multi-selection. Injected by the host UI;
// the controller replaces the selection when an unselected element is
// dragged.
type Selection interface {
	Selected() []string
	Replace(ids []string)
}

// SettingsProvider supplies the live snap settings for the session.
type SettingsProvider interface {
	SnapSettings() snap.Settings
}

// gestureState is the controller's explicit tagged state. Illegal
// transitions are no-ops rather than errors, guarding against out-of-order
// pointer event delivery.
type gestureState int

const (
	stateIdle gestureState = iota
	stateDragging
)

// member is one element taking part in the gesture, with its captured
// starting position.
type member struct {
	id     string
	startX float64
	startY float64
}

// Controller runs drag gestures against the element store. It is not
// reentrant: Move, End and Cancel outside an active gesture do nothing.
type Controller struct {
	store     *scene.Store
	hist      *history.Store
	selection Selection
	settings  SettingsProvider

	state     gestureState
	anchorID  string
	members   []member
	pointerX  float64
	pointerY  float64
	ticked    bool
	colliding bool
	guides    []snap.Guide
}

// New creates a controller over the given collaborators. hist may be nil
// when the host does not want gesture undo.
func New(store *scene.Store, hist *history.Store, sel Selection, settings SettingsProvider) *Controller {
	return &Controller{
		store:     store,
		hist:      hist,
		selection: sel,
		settings:  settings,
	}
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool { return c.state == stateDragging }

// Colliding reports whether any group member overlapped a non-group element
// on the last move tick. Feedback only; moves are never blocked.
func (c *Controller) Colliding() bool { return c.colliding }

// Guides returns the snap guides active on the last move tick.
func (c *Controller) Guides() []snap.Guide { return c.guides }

// Start begins a gesture on the given element. If the element is not part
// of the current selection, the selection is replaced with just that
// element. The drag group is resolved (a table pulls in its chairs; a
// multi-selection is expanded the same way) and every member's starting
// position is captured. Unknown ids are ignored and the controller stays
// idle.
func (c *Controller) Start(elementID string, ev PointerEvent) {
	if c.state != stateIdle {
		return
	}
	target, ok := c.store.Get(elementID)
	if !ok || target.Locked {
		return
	}

	if !c.isSelected(elementID) {
		c.selection.Replace([]string{elementID})
	}

	ids := c.resolveGroup(elementID)
	c.members = c.members[:0]
	for _, id := range ids {
		e, ok := c.store.Get(id)
		if !ok {
			// A missing id simply drops that member from the group.
			continue
		}
		c.members = append(c.members, member{id: id, startX: e.X, startY: e.Y})
	}

	c.anchorID = elementID
	c.pointerX = ev.X
	c.pointerY = ev.Y
	c.ticked = false
	c.colliding = false
	c.guides = nil
	c.state = stateDragging
}

// Move applies one pointer tick to the active gesture. The anchor element
// is snapped; every other member receives the raw constrained delta so the
// group moves rigidly. Collision against non-group elements is computed for
// feedback and positions are written unconditionally. A Move outside a
// gesture is a no-op.
func (c *Controller) Move(ev PointerEvent) {
	if c.state != stateDragging {
		return
	}
	c.ticked = true

	dx, dy := c.constrainedDelta(ev)

	// Snap correction applies to the anchor only; every other member
	// keeps the raw constrained delta and is never independently
	// snapped.
	snapDX, snapDY := dx, dy
	c.guides = nil
	if anchor, ok := c.store.Get(c.anchorID); ok {
		start := c.startOf(c.anchorID)
		candidate := snap.Position{X: start.startX + dx, Y: start.startY + dy}
		res := snap.Calculate(anchor, candidate, c.store.Elements(), c.settings.SnapSettings())
		snapDX = res.Position.X - start.startX
		snapDY = res.Position.Y - start.startY
		c.guides = res.Guides
	}

	for _, m := range c.members {
		px, py := m.startX+dx, m.startY+dy
		if m.id == c.anchorID {
			px, py = m.startX+snapDX, m.startY+snapDY
		}
		// Ignore NotFound: an element deleted mid-gesture drops out.
		_ = c.store.SetPosition(m.id, px, py)
	}

	c.colliding = c.checkCollisions()
}

// End commits the gesture. If at least one member moved, an update change
// record is emitted for each moved member and a single MOVE_ELEMENTS history
// entry covering the whole group is recorded. A zero-delta gesture
// transitions back to idle without history or change records. The
// modifier is sampled here as well, so releasing it mid-gesture affects the
// final constrained delta like any other tick.
func (c *Controller) End(ev PointerEvent) {
	if c.state != stateDragging {
		return
	}
	// A press-and-release with no pointer travel must not nudge the
	// anchor through snap; only run the final tick if something moved.
	if c.ticked || ev.X != c.pointerX || ev.Y != c.pointerY {
		c.Move(ev)
	}

	if moved := c.movedIDs(); len(moved) > 0 {
		c.store.CommitMove(moved)

		if c.hist != nil {
			ids := c.memberIDs()
			before := make(map[string]*types.Element, len(ids))
			for _, m := range c.members {
				if e, ok := c.store.Get(m.id); ok {
					cp := e.Clone()
					cp.X = m.startX
					cp.Y = m.startY
					before[m.id] = cp
				}
			}
			after := c.store.SnapshotOf(ids)
			c.hist.Record(history.TypeMoveElements, "Move elements", before, after)
		}
	}

	c.reset()
}

// Cancel aborts the gesture, restoring every member to its captured start
// position. No history entry is created. Safe to call at any time.
func (c *Controller) Cancel() {
	if c.state != stateDragging {
		return
	}
	for _, m := range c.members {
		_ = c.store.SetPosition(m.id, m.startX, m.startY)
	}
	c.reset()
}

// reset returns the controller to idle.
func (c *Controller) reset() {
	c.state = stateIdle
	c.anchorID = ""
	c.members = c.members[:0]
	c.colliding = false
	c.guides = nil
}

// constrainedDelta computes the pointer delta from gesture start, zeroed on
// the lesser axis when the constrain modifier is held.
func (c *Controller) constrainedDelta(ev PointerEvent) (dx, dy float64) {
	dx = ev.X - c.pointerX
	dy = ev.Y - c.pointerY
	if ev.ConstrainAxis {
		if math.Abs(dx) >= math.Abs(dy) {
			dy = 0
		} else {
			dx = 0
		}
	}
	return dx, dy
}

// resolveGroup returns the ids moving with the drag target: the full
// selection when the target is part of it, with every selected table
// pulling in its chairs; otherwise the target alone (plus chairs when it is
// a table).
func (c *Controller) resolveGroup(elementID string) []string {
	base := []string{elementID}
	if c.isSelected(elementID) {
		base = c.selection.Selected()
	}

	seen := make(map[string]bool, len(base))
	var ids []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, id := range base {
		add(id)
		e, ok := c.store.Get(id)
		if !ok || !e.Kind.CanOwnChildren() {
			continue
		}
		for _, child := range c.store.GetChildren(id) {
			add(child.ID)
		}
	}
	return ids
}

// checkCollisions tests every group member against all non-group elements.
// Members are never tested against each other.
func (c *Controller) checkCollisions() bool {
	group := make(map[string]bool, len(c.members))
	for _, m := range c.members {
		group[m.id] = true
	}

	all := c.store.Elements()
	var outside []*types.Element
	for _, e := range all {
		if !group[e.ID] {
			outside = append(outside, e)
		}
	}

	for _, m := range c.members {
		e, ok := c.store.Get(m.id)
		if !ok {
			continue
		}
		for _, other := range outside {
			if geometry.Collide(e, other, geometry.DefaultBuffer) {
				return true
			}
		}
	}
	return false
}

// movedIDs returns the ids of every member that left its starting position.
func (c *Controller) movedIDs() []string {
	var moved []string
	for _, m := range c.members {
		e, ok := c.store.Get(m.id)
		if !ok {
			continue
		}
		if e.X != m.startX || e.Y != m.startY {
			moved = append(moved, m.id)
		}
	}
	return moved
}

// startOf returns the captured member entry for id.
func (c *Controller) startOf(id string) member {
	for _, m := range c.members {
		if m.id == id {
			return m
		}
	}
	return member{id: id}
}

// memberIDs returns the ids of every group member.
func (c *Controller) memberIDs() []string {
	ids := make([]string, len(c.members))
	for i, m := range c.members {
		ids[i] = m.id
	}
	return ids
}

// isSelected reports whether id is in the current selection.
func (c *Controller) isSelected(id string) bool {
	for _, sid := range c.selection.Selected() {
		if sid == id {
			return true
		}
	}
	return false
}
