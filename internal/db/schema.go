package db

// SchemaSQL is the complete schema for fresh installs. It is the single
// source of truth: repository tests load it via GetSchemaSQL() so any
// column drift between code and schema fails immediately with
// "no such column" instead of surfacing in production.
//
// Keep this in sync with migrations.go when adding columns or tables.
const SchemaSQL = `
-- Topics (reusable discussion items)
CREATE TABLE IF NOT EXISTS topics (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL,
	category TEXT,
	active INTEGER NOT NULL DEFAULT 1,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Delegates (participants eligible to attend and sign)
CREATE TABLE IF NOT EXISTS delegates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	name TEXT NOT NULL,
	surname TEXT NOT NULL,
	district TEXT,
	titular INTEGER NOT NULL DEFAULT 1,
	active INTEGER NOT NULL DEFAULT 1
);

-- Meetings (immutable once committed, except cascade delete)
CREATE TABLE IF NOT EXISTS meetings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	time TEXT,
	place TEXT,
	venue TEXT,
	type TEXT CHECK(type IN ('in-person', 'virtual')),
	platform TEXT,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Agenda items (topic at a position within one meeting)
CREATE TABLE IF NOT EXISTS agenda_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	meeting_id INTEGER NOT NULL,
	topic_id INTEGER NOT NULL,
	position INTEGER NOT NULL,
	notes TEXT,
	FOREIGN KEY (meeting_id) REFERENCES meetings(id),
	FOREIGN KEY (topic_id) REFERENCES topics(id)
);

-- Signers (exactly one chair and one secretary per meeting)
CREATE TABLE IF NOT EXISTS signers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	meeting_id INTEGER NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('chair', 'secretary')),
	delegate_id INTEGER NOT NULL,
	FOREIGN KEY (meeting_id) REFERENCES meetings(id),
	FOREIGN KEY (delegate_id) REFERENCES delegates(id)
);

-- Schema migrations tracking
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema for test setup.
func GetSchemaSQL() string {
	return SchemaSQL
}
