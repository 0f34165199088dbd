package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/croft/internal/ports/secondary"
)

// EquipmentRepository implements secondary.EquipmentRepository with SQLite.
type EquipmentRepository struct {
	db *sql.DB
}

// NewEquipmentRepository creates a new SQLite equipment repository.
func NewEquipmentRepository(db *sql.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create persists a new piece of equipment.
func (r *EquipmentRepository) Create(ctx context.Context, eq *secondary.EquipmentRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO equipment (name, description, purchase_date, condition, last_maintenance) VALUES (?, ?, ?, ?, ?)",
		eq.Name, nullable(eq.Description), nullable(eq.PurchaseDate),
		nullable(eq.Condition), nullable(eq.LastMaintenance),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create equipment: %w", err)
	}
	return result.LastInsertId()
}

// GetByID retrieves a piece of equipment by ID.
func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*secondary.EquipmentRecord, error) {
	var (
		description, purchaseDate  sql.NullString
		condition, lastMaintenance sql.NullString
		createdAt                  time.Time
	)

	record := &secondary.EquipmentRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, purchase_date, condition, last_maintenance, created_at FROM equipment WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &description, &purchaseDate, &condition, &lastMaintenance, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("equipment %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	record.Description = description.String
	record.PurchaseDate = purchaseDate.String
	record.Condition = condition.String
	record.LastMaintenance = lastMaintenance.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all equipment ordered by name.
func (r *EquipmentRepository) List(ctx context.Context) ([]*secondary.EquipmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, description, purchase_date, condition, last_maintenance, created_at FROM equipment ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	var items []*secondary.EquipmentRecord
	for rows.Next() {
		var (
			description, purchaseDate  sql.NullString
			condition, lastMaintenance sql.NullString
			createdAt                  time.Time
		)

		record := &secondary.EquipmentRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &description, &purchaseDate, &condition, &lastMaintenance, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}

		record.Description = description.String
		record.PurchaseDate = purchaseDate.String
		record.Condition = condition.String
		record.LastMaintenance = lastMaintenance.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		items = append(items, record)
	}

	return items, rows.Err()
}

// Update rewrites an equipment row's fields.
func (r *EquipmentRepository) Update(ctx context.Context, eq *secondary.EquipmentRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE equipment SET name = ?, description = ?, purchase_date = ?, condition = ?, last_maintenance = ? WHERE id = ?",
		eq.Name, nullable(eq.Description), nullable(eq.PurchaseDate),
		nullable(eq.Condition), nullable(eq.LastMaintenance), eq.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("equipment %d not found", eq.ID)
	}

	return nil
}

// Delete removes a piece of equipment.
func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM equipment WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("equipment %d not found", id)
	}

	return nil
}

// Ensure EquipmentRepository implements the interface.
var _ secondary.EquipmentRepository = (*EquipmentRepository)(nil)
