package types

import (
	"encoding/json"
	"time"
)

// Change types recorded in the sync log.
const (
	ChangeCreate = "create"
	ChangeUpdate = "update"
	ChangeDelete = "delete"
)

// validChangeTypes is the set of recognized change type values.
var validChangeTypes = map[string]bool{
	ChangeCreate: true,
	ChangeUpdate: true,
	ChangeDelete: true,
}

// ValidChangeType reports whether t is a recognized change type.
func ValidChangeType(t string) bool {
	return validChangeTypes[t]
}

// ChangeRecord is one append-only entry in the sync log. Records are drained
// by the external sync collaborator; the editor core only appends them.
type ChangeRecord struct {
	ID         string          `json:"id"`
	LayoutID   string          `json:"layoutId"`
	ElementID  string          `json:"elementId,omitempty"`
	ChangeType string          `json:"changeType"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
	Synced     bool            `json:"synced"`
}
