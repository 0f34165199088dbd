package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_goats_table",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_husbandry_columns_to_goats",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_farm_operations_and_herd_health_tables",
		Up:      migrationV3,
	},
}

// LatestMigrationVersion returns the version number of the newest migration.
func LatestMigrationVersion() int {
	return migrations[len(migrations)-1].Version
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	// Create schema_version table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(db); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		// Record migration
		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 creates the goats table with the identity columns only.
// Husbandry and economics fields arrived in V2.
func migrationV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS goats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			breed TEXT NOT NULL,
			name TEXT NOT NULL,
			gender TEXT NOT NULL CHECK(gender IN ('Male', 'Female')),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create goats table: %w", err)
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_goats_name ON goats(name);
		CREATE INDEX IF NOT EXISTS idx_goats_breed ON goats(breed);
	`)
	if err != nil {
		return fmt.Errorf("failed to create goats indexes: %w", err)
	}

	return nil
}

// migrationV2 adds the husbandry and economics columns to goats
func migrationV2(db *sql.DB) error {
	columns := []string{
		"ALTER TABLE goats ADD COLUMN offspring INTEGER DEFAULT 0",
		"ALTER TABLE goats ADD COLUMN cost REAL",
		"ALTER TABLE goats ADD COLUMN weight REAL",
		"ALTER TABLE goats ADD COLUMN current_price REAL",
		"ALTER TABLE goats ADD COLUMN diet TEXT",
		"ALTER TABLE goats ADD COLUMN last_bred TEXT",
		"ALTER TABLE goats ADD COLUMN health_status TEXT",
	}
	for _, stmt := range columns {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to add goats column: %w", err)
		}
	}
	return nil
}

// migrationV3 creates the farm operations tables (workers, equipment,
// sensors, spaces) and the herd health tables (vaccines, diseases, and the
// cascade-deleting association tables linking them to goats).
func migrationV3(db *sql.DB) error {
	// Group 1: farm operations
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS workers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			hours_worked INTEGER DEFAULT 0,
			leaves INTEGER DEFAULT 0,
			role TEXT,
			contact TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS equipment (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			purchase_date TEXT,
			condition TEXT,
			last_maintenance TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS sensors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sensor_type TEXT NOT NULL,
			location TEXT,
			last_reading REAL,
			last_reading_at DATETIME,
			status TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS spaces (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			type TEXT NOT NULL CHECK(type IN ('enclosure', 'grazing_field', 'other')),
			capacity INTEGER,
			grass_condition TEXT,
			health TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create farm operations tables: %w", err)
	}

	// Group 2: herd health lookups and associations
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS vaccines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS diseases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS goat_vaccines (
			goat_id INTEGER NOT NULL,
			vaccine_id INTEGER NOT NULL,
			PRIMARY KEY (goat_id, vaccine_id),
			FOREIGN KEY (goat_id) REFERENCES goats(id) ON DELETE CASCADE,
			FOREIGN KEY (vaccine_id) REFERENCES vaccines(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS goat_diseases (
			goat_id INTEGER NOT NULL,
			disease_id INTEGER NOT NULL,
			PRIMARY KEY (goat_id, disease_id),
			FOREIGN KEY (goat_id) REFERENCES goats(id) ON DELETE CASCADE,
			FOREIGN KEY (disease_id) REFERENCES diseases(id) ON DELETE CASCADE
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create herd health tables: %w", err)
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_vaccines_name ON vaccines(name);
		CREATE INDEX IF NOT EXISTS idx_diseases_name ON diseases(name);
		CREATE INDEX IF NOT EXISTS idx_goat_vaccines_vaccine ON goat_vaccines(vaccine_id);
		CREATE INDEX IF NOT EXISTS idx_goat_diseases_disease ON goat_diseases(disease_id);
		CREATE INDEX IF NOT EXISTS idx_workers_name ON workers(name);
		CREATE INDEX IF NOT EXISTS idx_equipment_name ON equipment(name);
		CREATE INDEX IF NOT EXISTS idx_sensors_status ON sensors(status);
		CREATE INDEX IF NOT EXISTS idx_spaces_type ON spaces(type);
	`)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
