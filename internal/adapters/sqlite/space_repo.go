package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/croft/internal/ports/secondary"
)

// SpaceRepository implements secondary.SpaceRepository with SQLite.
type SpaceRepository struct {
	db *sql.DB
}

// NewSpaceRepository creates a new SQLite space repository.
func NewSpaceRepository(db *sql.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

// Create persists a new space. The CHECK constraint on type makes invalid
// space types fail here.
func (r *SpaceRepository) Create(ctx context.Context, space *secondary.SpaceRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO spaces (name, type, capacity, grass_condition, health) VALUES (?, ?, ?, ?, ?)",
		space.Name, space.Type, space.Capacity,
		nullable(space.GrassCondition), nullable(space.Health),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create space: %w", err)
	}
	return result.LastInsertId()
}

// GetByID retrieves a space by ID.
func (r *SpaceRepository) GetByID(ctx context.Context, id int64) (*secondary.SpaceRecord, error) {
	var (
		capacity               sql.NullInt64
		grassCondition, health sql.NullString
		createdAt              time.Time
	)

	record := &secondary.SpaceRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, type, capacity, grass_condition, health, created_at FROM spaces WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.Type, &capacity, &grassCondition, &health, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("space %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	record.Capacity = int(capacity.Int64)
	record.GrassCondition = grassCondition.String
	record.Health = health.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all spaces ordered by name.
func (r *SpaceRepository) List(ctx context.Context) ([]*secondary.SpaceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, type, capacity, grass_condition, health, created_at FROM spaces ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	defer rows.Close()

	var spaces []*secondary.SpaceRecord
	for rows.Next() {
		var (
			capacity               sql.NullInt64
			grassCondition, health sql.NullString
			createdAt              time.Time
		)

		record := &secondary.SpaceRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Type, &capacity, &grassCondition, &health, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan space: %w", err)
		}

		record.Capacity = int(capacity.Int64)
		record.GrassCondition = grassCondition.String
		record.Health = health.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		spaces = append(spaces, record)
	}

	return spaces, rows.Err()
}

// Update rewrites a space's fields.
func (r *SpaceRepository) Update(ctx context.Context, space *secondary.SpaceRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE spaces SET name = ?, type = ?, capacity = ?, grass_condition = ?, health = ? WHERE id = ?",
		space.Name, space.Type, space.Capacity,
		nullable(space.GrassCondition), nullable(space.Health), space.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update space: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("space %d not found", space.ID)
	}

	return nil
}

// Delete removes a space.
func (r *SpaceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM spaces WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete space: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("space %d not found", id)
	}

	return nil
}

// Ensure SpaceRepository implements the interface.
var _ secondary.SpaceRepository = (*SpaceRepository)(nil)
