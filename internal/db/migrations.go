package db

type migration struct {
	version int
	name    string
	up      string
}

var migrations = []migration{
	{
		version: 1,
		name:    "items",
		up: `
			CREATE TABLE items (
				id TEXT PRIMARY KEY,
				type TEXT NOT NULL,
				status TEXT NOT NULL,
				title TEXT NOT NULL DEFAULT '',
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			);
			CREATE INDEX idx_items_type ON items(type);
		`,
	},
	{
		version: 2,
		name:    "item_meta",
		up: `
			CREATE TABLE item_meta (
				item_id TEXT NOT NULL,
				meta_key TEXT NOT NULL,
				meta_value TEXT NOT NULL,
				updated_at TEXT NOT NULL,
				PRIMARY KEY (item_id, meta_key)
			);
		`,
	},
	{
		version: 3,
		name:    "events",
		up: `
			CREATE TABLE events (
				id TEXT PRIMARY KEY,
				timestamp TEXT NOT NULL,
				type TEXT NOT NULL,
				entity_type TEXT NOT NULL,
				entity_id TEXT NOT NULL,
				payload_json TEXT,
				metadata_json TEXT
			);
			CREATE INDEX idx_events_entity ON events(entity_type, entity_id);
			CREATE INDEX idx_events_timestamp ON events(timestamp, id);
		`,
	},
}
