package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// AppendChange adds one record to the sync log. The log is append-only;
// records are only ever flipped to synced, never rewritten. Empty ids and
// timestamps are filled in.
func (b *Backend) AppendChange(r types.ChangeRecord) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	if !types.ValidChangeType(r.ChangeType) {
		return fmt.Errorf("append change: unknown change type %q", r.ChangeType)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}

	_, err = db.Exec(`INSERT INTO change_records
		(change_id, layout_id, element_id, change_type, payload, timestamp, synced)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.LayoutID, r.ElementID, r.ChangeType, string(r.Payload),
		r.Timestamp.Format(time.RFC3339Nano), boolToInt(r.Synced))
	if err != nil {
		return fmt.Errorf("append change %s: %w", r.ID, err)
	}
	return nil
}

// UnsyncedChanges returns the pending records for a layout in timestamp
// order, for the external sync collaborator to drain.
func (b *Backend) UnsyncedChanges(layoutID string) ([]types.ChangeRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT change_id, layout_id, element_id, change_type, payload, timestamp
		FROM change_records WHERE layout_id = ? AND synced = 0
		ORDER BY timestamp ASC`, layoutID)
	if err != nil {
		return nil, fmt.Errorf("unsynced changes: %w", err)
	}
	defer rows.Close()

	var out []types.ChangeRecord
	for rows.Next() {
		var r types.ChangeRecord
		var payload, ts string
		if err := rows.Scan(&r.ID, &r.LayoutID, &r.ElementID, &r.ChangeType, &payload, &ts); err != nil {
			return nil, fmt.Errorf("unsynced changes: %w", err)
		}
		if payload != "" {
			r.Payload = []byte(payload)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			r.Timestamp = parsed
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unsynced changes: %w", err)
	}
	return out, nil
}

// MarkSynced flips the listed records to synced.
func (b *Backend) MarkSynced(ids []string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := db.Exec(`UPDATE change_records SET synced = 1 WHERE change_id = ?`, id); err != nil {
			return fmt.Errorf("mark synced %s: %w", id, err)
		}
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
