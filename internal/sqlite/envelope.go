package sqlite

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// CurrentSchemaVersion is the envelope version this build writes. Older
// versions are migrated on load, step by step.
const CurrentSchemaVersion = 3

// envelope is the external representation of a saved layout.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
	SavedAt time.Time       `json:"savedAt"`
}

// encodeEnvelope wraps the layout in a current-version envelope.
func encodeEnvelope(l *types.Layout, savedAt time.Time) ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return json.Marshal(envelope{
		Version: CurrentSchemaVersion,
		Data:    data,
		SavedAt: savedAt,
	})
}

// decodeEnvelope parses an envelope, migrates its data to the current
// schema version, sanitizes, and validates. Any failure rejects the whole
// object as ErrInvalidLayout.
func decodeEnvelope(raw []byte) (*types.Layout, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed envelope: %v", types.ErrInvalidLayout, err)
	}
	if env.Version < 1 || env.Version > CurrentSchemaVersion {
		return nil, fmt.Errorf("%w: unsupported schema version %d", types.ErrInvalidLayout, env.Version)
	}

	data, err := migrateLayout(env.Data, env.Version)
	if err != nil {
		return nil, err
	}

	var l types.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: malformed layout data: %v", types.ErrInvalidLayout, err)
	}

	types.SanitizeLayout(&l)
	for _, e := range l.Elements {
		if e != nil {
			types.SanitizeElement(e)
		}
	}
	if err := types.ValidateLayout(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// migration is one version step, operating on the generically decoded
// layout object so renamed or missing fields of old envelopes can be
// rewritten before typed decoding.
type migration func(m map[string]any) error

// migrations[v] transforms data written at version v into version v+1.
var migrations = map[int]migration{
	1: migrateV1DeriveElementOrder,
	2: migrateV2NestSettings,
}

// migrateLayout applies version-indexed steps sequentially from fromVersion
// up to CurrentSchemaVersion and re-encodes the result. Numeric zIndex
// values are floored to integers regardless of version, since clients wrote
// fractional values at every schema version.
func migrateLayout(data json.RawMessage, fromVersion int) (json.RawMessage, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: malformed layout data: %v", types.ErrInvalidLayout, err)
	}

	for v := fromVersion; v < CurrentSchemaVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return nil, fmt.Errorf("%w: no migration from version %d", types.ErrInvalidLayout, v)
		}
		if err := step(m); err != nil {
			return nil, fmt.Errorf("%w: migrating from version %d: %v", types.ErrInvalidLayout, v, err)
		}
	}
	floorZIndexes(m)

	out, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: re-encoding migrated layout: %v", types.ErrInvalidLayout, err)
	}
	return out, nil
}

// migrateV1DeriveElementOrder synthesizes the explicit elementOrder
// sequence that version 1 envelopes lacked: element ids sorted by zIndex,
// ties broken by id for determinism.
func migrateV1DeriveElementOrder(m map[string]any) error {
	if _, ok := m["elementOrder"]; ok {
		return nil
	}
	elements, ok := m["elements"].(map[string]any)
	if !ok {
		m["elementOrder"] = []any{}
		return nil
	}

	type entry struct {
		id string
		z  float64
	}
	entries := make([]entry, 0, len(elements))
	for id, v := range elements {
		z := 0.0
		if e, ok := v.(map[string]any); ok {
			if zv, ok := e["zIndex"].(float64); ok {
				z = zv
			}
		}
		entries = append(entries, entry{id: id, z: z})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].z != entries[j].z {
			return entries[i].z < entries[j].z
		}
		return entries[i].id < entries[j].id
	})

	order := make([]any, len(entries))
	for i, e := range entries {
		order[i] = e.id
	}
	m["elementOrder"] = order
	return nil
}

// migrateV2NestSettings moves the flat gridSize and snapToGrid fields that
// version 2 envelopes carried at the layout top level into settings.
func migrateV2NestSettings(m map[string]any) error {
	settings, ok := m["settings"].(map[string]any)
	if !ok {
		settings = map[string]any{}
		m["settings"] = settings
	}
	if v, ok := m["gridSize"]; ok {
		if _, set := settings["gridSize"]; !set {
			settings["gridSize"] = v
		}
		delete(m, "gridSize")
	}
	if v, ok := m["snapToGrid"]; ok {
		if _, set := settings["snapToGrid"]; !set {
			settings["snapToGrid"] = v
		}
		delete(m, "snapToGrid")
	}
	return nil
}

// floorZIndexes floors every element's zIndex so fractional values written
// by old clients decode into the integer field.
func floorZIndexes(m map[string]any) {
	elements, ok := m["elements"].(map[string]any)
	if !ok {
		return
	}
	for _, v := range elements {
		e, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if z, ok := e["zIndex"].(float64); ok {
			e["zIndex"] = math.Floor(z)
		}
	}
}
