// Package history implements the undo/redo store for the floor-plan
// editor. Commands carry full before/after snapshots of the affected
// element subset, so undo and redo are plain snapshot restores with no
// diff replay.
package history

import (
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// Command types recorded by the editor.
const (
	TypeMoveElements  = "MOVE_ELEMENTS"
	TypeCreateElement = "CREATE_ELEMENT"
	TypeUpdateElement = "UPDATE_ELEMENT"
	TypeDeleteElement = "DELETE_ELEMENT"
)

// DefaultLimit caps the undo stack. When a record pushes past the cap the
// oldest command is dropped.
const DefaultLimit = 100

// Command is one reversible mutation. Before and After are snapshots of the
// affected elements keyed by id; a nil entry marks the element as absent in
// that state.
type Command struct {
	Type   string
	Label  string
	Before map[string]*types.Element
	After  map[string]*types.Element
}

// Restorer applies a snapshot back onto the element store. Satisfied by
// *scene.Store.
type Restorer interface {
	ApplySnapshot(map[string]*types.Element)
}

// Store is the append-only undo stack plus its redo mirror.
type Store struct {
	target Restorer
	undo   []Command
	redo   []Command
	limit  int
}

// New creates a history store applying snapshots to target, capped at
// DefaultLimit commands.
func New(target Restorer) *Store {
	return &Store{target: target, limit: DefaultLimit}
}

// SetLimit overrides the stack cap. Values below one are ignored.
func (s *Store) SetLimit(n int) {
	if n >= 1 {
		s.limit = n
	}
}

// Record pushes a new command and clears the redo stack. The oldest command
// is dropped once the cap is reached.
func (s *Store) Record(cmdType, label string, before, after map[string]*types.Element) {
	s.undo = append(s.undo, Command{
		Type:   cmdType,
		Label:  label,
		Before: before,
		After:  after,
	})
	if len(s.undo) > s.limit {
		s.undo = s.undo[len(s.undo)-s.limit:]
	}
	s.redo = nil
}

// Undo restores the most recent command's before state and moves the
// command to the redo stack. No-op when the undo stack is empty.
func (s *Store) Undo() {
	if len(s.undo) == 0 {
		return
	}
	cmd := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.target.ApplySnapshot(cmd.Before)
	s.redo = append(s.redo, cmd)
}

// Redo reapplies the most recently undone command's after state. No-op when
// the redo stack is empty.
func (s *Store) Redo() {
	if len(s.redo) == 0 {
		return
	}
	cmd := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.target.ApplySnapshot(cmd.After)
	s.undo = append(s.undo, cmd)
}

// CanUndo reports whether an undoable command exists.
func (s *Store) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether a redoable command exists.
func (s *Store) CanRedo() bool { return len(s.redo) > 0 }

// Depth returns the current undo stack depth.
func (s *Store) Depth() int { return len(s.undo) }
