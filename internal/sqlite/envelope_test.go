package sqlite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// v1Envelope is a hand-written envelope in the oldest supported schema:
// no elementOrder, flat gridSize/snapToGrid, fractional zIndex values.
const v1Envelope = `{
  "version": 1,
  "savedAt": "2024-03-02T10:00:00Z",
  "data": {
    "id": "legacy-1",
    "name": "legacy ballroom",
    "dimensions": {"width": 2000, "height": 1500, "unit": "m"},
    "gridSize": 25,
    "snapToGrid": false,
    "elements": {
      "table-a": {
        "id": "table-a", "kind": "round_table",
        "x": 100, "y": 100, "width": 120, "height": 120,
        "zIndex": 2.7, "visible": true,
        "createdAt": "2024-03-02T09:00:00Z", "updatedAt": "2024-03-02T09:00:00Z",
        "metadata": {}
      },
      "wall-b": {
        "id": "wall-b", "kind": "wall",
        "x": 0, "y": 0, "width": 800, "height": 10,
        "zIndex": 1, "visible": true,
        "createdAt": "2024-03-02T09:00:00Z", "updatedAt": "2024-03-02T09:00:00Z",
        "metadata": {}
      }
    }
  }
}`

func TestMigrateFromV1(t *testing.T) {
	l, err := decodeEnvelope([]byte(v1Envelope))
	require.NoError(t, err)

	// elementOrder derived from zIndex: the wall (1) paints below the
	// table (2.7).
	assert.Equal(t, []string{"wall-b", "table-a"}, l.ElementOrder)

	// Flat settings moved into the settings object.
	assert.Equal(t, 25.0, l.Settings.GridSize)
	assert.False(t, l.Settings.SnapToGrid)

	// Fractional zIndex floored into the integer field.
	assert.Equal(t, 2, l.Elements["table-a"].ZIndex)

	require.NoError(t, types.ValidateLayout(l))
}

func TestMigrateFromV2(t *testing.T) {
	// Version 2 already has elementOrder but still flat grid settings.
	env := map[string]any{
		"version": 2,
		"savedAt": "2024-09-15T10:00:00Z",
		"data": map[string]any{
			"id":           "legacy-2",
			"name":         "legacy garden",
			"dimensions":   map[string]any{"width": 2000.0, "height": 1500.0, "unit": "ft"},
			"gridSize":     40.0,
			"snapToGrid":   true,
			"elementOrder": []string{"zone-a"},
			"elements": map[string]any{
				"zone-a": map[string]any{
					"id": "zone-a", "kind": "zone",
					"x": 10.0, "y": 10.0, "width": 300.0, "height": 300.0,
					"zIndex": 1, "visible": true,
					"createdAt": "2024-09-15T09:00:00Z", "updatedAt": "2024-09-15T09:00:00Z",
					"metadata": map[string]any{},
				},
			},
		},
	}
	raw, err := json.Marshal(env)
	require.NoError(t, err)

	l, err := decodeEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, 40.0, l.Settings.GridSize)
	assert.True(t, l.Settings.SnapToGrid)
	assert.Equal(t, types.UnitFeet, l.Dimensions.Unit)
}

func TestDecodeRejectsAfterFailedMigration(t *testing.T) {
	// A v1 envelope whose element is structurally broken must reject the
	// whole layout even though migration itself succeeds.
	broken := `{
	  "version": 1,
	  "savedAt": "2024-03-02T10:00:00Z",
	  "data": {
	    "id": "bad", "name": "bad",
	    "dimensions": {"width": 2000, "height": 1500, "unit": "m"},
	    "elements": {
	      "chair-x": {
	        "id": "chair-x", "kind": "chair",
	        "x": 0, "y": 0, "width": 20, "height": 20,
	        "zIndex": 1, "visible": true, "parentId": "missing-table",
	        "createdAt": "2024-03-02T09:00:00Z", "updatedAt": "2024-03-02T09:00:00Z",
	        "metadata": {}
	      }
	    }
	  }
	}`

	_, err := decodeEnvelope([]byte(broken))
	assert.ErrorIs(t, err, types.ErrInvalidLayout)
}

func TestCurrentVersionRoundTrips(t *testing.T) {
	l := fixtureLayout("current")
	raw, err := encodeEnvelope(l, l.CreatedAt)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, CurrentSchemaVersion, env.Version)

	got, err := decodeEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, l.ElementOrder, got.ElementOrder)
}

func TestCurrentVersionFloorsFractionalZIndex(t *testing.T) {
	// Fractional zIndex values appear in current-version envelopes too;
	// flooring is not tied to the older schemas.
	env := `{
	  "version": 3,
	  "savedAt": "2025-06-01T10:00:00Z",
	  "data": {
	    "id": "frac", "name": "frac",
	    "dimensions": {"width": 2000, "height": 1500, "unit": "m"},
	    "elementOrder": ["deco-a"],
	    "settings": {"gridSize": 10, "snapToGrid": true},
	    "elements": {
	      "deco-a": {
	        "id": "deco-a", "kind": "decoration",
	        "x": 50, "y": 50, "width": 40, "height": 40,
	        "zIndex": 2.5, "visible": true,
	        "createdAt": "2025-06-01T09:00:00Z", "updatedAt": "2025-06-01T09:00:00Z",
	        "metadata": {}
	      }
	    }
	  }
	}`

	l, err := decodeEnvelope([]byte(env))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Elements["deco-a"].ZIndex)
}
