package sqlite

// schemaSQL holds the DDL for the layouts table and the change-record log.
// Layout envelopes are stored as opaque JSON keyed by layout id; the
// columns lifted out (name, saved_at) serve listing without decoding.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS layouts (
    layout_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    saved_at TEXT NOT NULL,
    envelope TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS change_records (
    change_id TEXT PRIMARY KEY,
    layout_id TEXT NOT NULL,
    element_id TEXT,
    change_type TEXT NOT NULL,
    payload TEXT,
    timestamp TEXT NOT NULL,
    synced INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_change_records_layout
    ON change_records(layout_id, synced);
`
