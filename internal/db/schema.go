package db

// SchemaSQL is the complete schema for fresh croft installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(): if repository code references a column
// that does not exist here, tests fail immediately with "no such column"
// instead of drifting silently.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Goats (the herd itself)
CREATE TABLE IF NOT EXISTS goats (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	breed TEXT NOT NULL,
	name TEXT NOT NULL,
	gender TEXT NOT NULL CHECK(gender IN ('Male', 'Female')),
	offspring INTEGER DEFAULT 0,
	cost REAL,
	weight REAL,
	current_price REAL,
	diet TEXT,
	last_bred TEXT,
	health_status TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Vaccines (lookup table, shared across the herd)
CREATE TABLE IF NOT EXISTS vaccines (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Diseases (lookup table, shared across the herd)
CREATE TABLE IF NOT EXISTS diseases (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Goat/vaccine links. Deleting either parent removes the link rows.
CREATE TABLE IF NOT EXISTS goat_vaccines (
	goat_id INTEGER NOT NULL,
	vaccine_id INTEGER NOT NULL,
	PRIMARY KEY (goat_id, vaccine_id),
	FOREIGN KEY (goat_id) REFERENCES goats(id) ON DELETE CASCADE,
	FOREIGN KEY (vaccine_id) REFERENCES vaccines(id) ON DELETE CASCADE
);

-- Goat/disease links. Deleting either parent removes the link rows.
CREATE TABLE IF NOT EXISTS goat_diseases (
	goat_id INTEGER NOT NULL,
	disease_id INTEGER NOT NULL,
	PRIMARY KEY (goat_id, disease_id),
	FOREIGN KEY (goat_id) REFERENCES goats(id) ON DELETE CASCADE,
	FOREIGN KEY (disease_id) REFERENCES diseases(id) ON DELETE CASCADE
);

-- Workers (farm staff)
CREATE TABLE IF NOT EXISTS workers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	hours_worked INTEGER DEFAULT 0,
	leaves INTEGER DEFAULT 0,
	role TEXT,
	contact TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Equipment (tools and machinery)
CREATE TABLE IF NOT EXISTS equipment (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT,
	purchase_date TEXT,
	condition TEXT,
	last_maintenance TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Sensors (environmental monitoring)
CREATE TABLE IF NOT EXISTS sensors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sensor_type TEXT NOT NULL,
	location TEXT,
	last_reading REAL,
	last_reading_at DATETIME,
	status TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Spaces (enclosures and grazing fields)
CREATE TABLE IF NOT EXISTS spaces (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	type TEXT NOT NULL CHECK(type IN ('enclosure', 'grazing_field', 'other')),
	capacity INTEGER,
	grass_condition TEXT,
	health TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Create indexes for common queries
CREATE INDEX IF NOT EXISTS idx_goats_name ON goats(name);
CREATE INDEX IF NOT EXISTS idx_goats_breed ON goats(breed);
CREATE INDEX IF NOT EXISTS idx_vaccines_name ON vaccines(name);
CREATE INDEX IF NOT EXISTS idx_diseases_name ON diseases(name);
CREATE INDEX IF NOT EXISTS idx_goat_vaccines_vaccine ON goat_vaccines(vaccine_id);
CREATE INDEX IF NOT EXISTS idx_goat_diseases_disease ON goat_diseases(disease_id);
CREATE INDEX IF NOT EXISTS idx_workers_name ON workers(name);
CREATE INDEX IF NOT EXISTS idx_equipment_name ON equipment(name);
CREATE INDEX IF NOT EXISTS idx_sensors_status ON sensors(status);
CREATE INDEX IF NOT EXISTS idx_spaces_type ON spaces(type);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - check if we have pre-versioning tables (migrations needed)
		var oldTableCount int
		err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='goats'").Scan(&oldTableCount)
		if err != nil {
			return err
		}

		if oldTableCount > 0 {
			// Old schema exists - run migrations to upgrade
			return RunMigrations()
		}

		// Completely fresh install - create the full schema directly and
		// mark every migration as applied so the chain never re-runs.
		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
