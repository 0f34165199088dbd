package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/croft/internal/ports/secondary"
)

// LookupRepository implements secondary.LookupRepository with SQLite.
// Vaccines and diseases share the same table shape (id + unique name), so
// one implementation serves both, parameterized by table names.
type LookupRepository struct {
	db         *sql.DB
	table      string // "vaccines" or "diseases"
	assocTable string // "goat_vaccines" or "goat_diseases"
	assocCol   string // "vaccine_id" or "disease_id"
}

// NewVaccineRepository creates a SQLite repository over the vaccines table.
func NewVaccineRepository(db *sql.DB) *LookupRepository {
	return &LookupRepository{db: db, table: "vaccines", assocTable: "goat_vaccines", assocCol: "vaccine_id"}
}

// NewDiseaseRepository creates a SQLite repository over the diseases table.
func NewDiseaseRepository(db *sql.DB) *LookupRepository {
	return &LookupRepository{db: db, table: "diseases", assocTable: "goat_diseases", assocCol: "disease_id"}
}

// Create persists a new named entry. The UNIQUE constraint on name makes
// duplicates fail here.
func (r *LookupRepository) Create(ctx context.Context, name string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (name) VALUES (?)", r.table), name,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s entry: %w", r.table, err)
	}
	return result.LastInsertId()
}

// GetByID retrieves an entry by its ID.
func (r *LookupRepository) GetByID(ctx context.Context, id int64) (*secondary.LookupRecord, error) {
	var createdAt time.Time
	record := &secondary.LookupRecord{}
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT id, name, created_at FROM %s WHERE id = ?", r.table), id,
	).Scan(&record.ID, &record.Name, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s entry %d not found", r.table, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s entry: %w", r.table, err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// GetByName retrieves an entry by its unique name.
func (r *LookupRepository) GetByName(ctx context.Context, name string) (*secondary.LookupRecord, error) {
	var createdAt time.Time
	record := &secondary.LookupRecord{}
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT id, name, created_at FROM %s WHERE name = ?", r.table), name,
	).Scan(&record.ID, &record.Name, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s entry '%s' not found", r.table, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s entry: %w", r.table, err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// List retrieves all entries ordered by name.
func (r *LookupRepository) List(ctx context.Context) ([]*secondary.LookupRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf("SELECT id, name, created_at FROM %s ORDER BY name ASC", r.table),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	var records []*secondary.LookupRecord
	for rows.Next() {
		var createdAt time.Time
		record := &secondary.LookupRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s entry: %w", r.table, err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		records = append(records, record)
	}

	return records, rows.Err()
}

// Delete removes an entry. The association rows referencing it cascade
// away; goat rows are untouched.
func (r *LookupRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.table), id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete %s entry: %w", r.table, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("%s entry %d not found", r.table, id)
	}

	return nil
}

// GoatsWith returns the ids of goats linked to the entry.
func (r *LookupRepository) GoatsWith(ctx context.Context, id int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf("SELECT goat_id FROM %s WHERE %s = ? ORDER BY goat_id ASC", r.assocTable, r.assocCol), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s links: %w", r.assocTable, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var goatID int64
		if err := rows.Scan(&goatID); err != nil {
			return nil, fmt.Errorf("failed to scan goat id: %w", err)
		}
		ids = append(ids, goatID)
	}

	return ids, rows.Err()
}

// Ensure LookupRepository implements the interface.
var _ secondary.LookupRepository = (*LookupRepository)(nil)
