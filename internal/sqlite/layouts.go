package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// SaveLayout validates the layout and upserts its versioned envelope. An
// invalid layout is rejected without touching the stored record.
func (b *Backend) SaveLayout(l *types.Layout) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	if err := types.ValidateLayout(l); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}

	savedAt := time.Now().UTC()
	env, err := encodeEnvelope(l, savedAt)
	if err != nil {
		return fmt.Errorf("save layout: %w", err)
	}

	_, err = db.Exec(`INSERT INTO layouts (layout_id, name, saved_at, envelope)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(layout_id) DO UPDATE SET
			name = excluded.name,
			saved_at = excluded.saved_at,
			envelope = excluded.envelope`,
		l.ID, l.Name, savedAt.Format(time.RFC3339Nano), string(env))
	if err != nil {
		return fmt.Errorf("save layout %s: %w", l.ID, err)
	}
	return nil
}

// LoadLayout reads, migrates and validates the layout with the given id.
// Returns ErrLayoutNotFound when no record exists and ErrInvalidLayout when
// the stored envelope fails validation even after migration; a partially
// migrated layout is never returned.
func (b *Backend) LoadLayout(id string) (*types.Layout, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	var raw string
	err = db.QueryRow(`SELECT envelope FROM layouts WHERE layout_id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load layout %s: %w", id, types.ErrLayoutNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", id, err)
	}

	l, err := decodeEnvelope([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", id, err)
	}
	return l, nil
}

// ListLayouts returns summaries of every saved layout, most recently saved
// first.
func (b *Backend) ListLayouts() ([]types.LayoutSummary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT layout_id, name, saved_at FROM layouts ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer rows.Close()

	var out []types.LayoutSummary
	for rows.Next() {
		var s types.LayoutSummary
		var savedAt string
		if err := rows.Scan(&s.ID, &s.Name, &savedAt); err != nil {
			return nil, fmt.Errorf("list layouts: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, savedAt); err == nil {
			s.SavedAt = ts
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	return out, nil
}

// DeleteLayout removes the saved record and its change log. Returns
// ErrLayoutNotFound when no record exists.
func (b *Backend) DeleteLayout(id string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec(`DELETE FROM layouts WHERE layout_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete layout %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete layout %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete layout %s: %w", id, types.ErrLayoutNotFound)
	}

	if _, err := db.Exec(`DELETE FROM change_records WHERE layout_id = ?`, id); err != nil {
		return fmt.Errorf("delete layout %s change log: %w", id, err)
	}
	return nil
}

// ImportLayout decodes an exported envelope from untrusted bytes, migrating
// and sanitizing before validation. The returned layout is safe to save.
func ImportLayout(data []byte) (*types.Layout, error) {
	l, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ExportLayout encodes the layout as a current-version envelope.
func ExportLayout(l *types.Layout) ([]byte, error) {
	if err := types.ValidateLayout(l); err != nil {
		return nil, err
	}
	env, err := encodeEnvelope(l, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	var pretty json.RawMessage = env
	return json.MarshalIndent(pretty, "", "  ")
}
