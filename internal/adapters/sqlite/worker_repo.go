package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/croft/internal/ports/secondary"
)

// WorkerRepository implements secondary.WorkerRepository with SQLite.
type WorkerRepository struct {
	db *sql.DB
}

// NewWorkerRepository creates a new SQLite worker repository.
func NewWorkerRepository(db *sql.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Create persists a new worker.
func (r *WorkerRepository) Create(ctx context.Context, worker *secondary.WorkerRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO workers (name, hours_worked, leaves, role, contact) VALUES (?, ?, ?, ?, ?)",
		worker.Name, worker.HoursWorked, worker.Leaves,
		nullable(worker.Role), nullable(worker.Contact),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create worker: %w", err)
	}
	return result.LastInsertId()
}

// GetByID retrieves a worker by ID.
func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*secondary.WorkerRecord, error) {
	var (
		role, contact sql.NullString
		createdAt     time.Time
	)

	record := &secondary.WorkerRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, hours_worked, leaves, role, contact, created_at FROM workers WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.HoursWorked, &record.Leaves, &role, &contact, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("worker %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	record.Role = role.String
	record.Contact = contact.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all workers ordered by name.
func (r *WorkerRepository) List(ctx context.Context) ([]*secondary.WorkerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, hours_worked, leaves, role, contact, created_at FROM workers ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []*secondary.WorkerRecord
	for rows.Next() {
		var (
			role, contact sql.NullString
			createdAt     time.Time
		)

		record := &secondary.WorkerRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.HoursWorked, &record.Leaves, &role, &contact, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}

		record.Role = role.String
		record.Contact = contact.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		workers = append(workers, record)
	}

	return workers, rows.Err()
}

// Update rewrites a worker's fields.
func (r *WorkerRepository) Update(ctx context.Context, worker *secondary.WorkerRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE workers SET name = ?, hours_worked = ?, leaves = ?, role = ?, contact = ? WHERE id = ?",
		worker.Name, worker.HoursWorked, worker.Leaves,
		nullable(worker.Role), nullable(worker.Contact), worker.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("worker %d not found", worker.ID)
	}

	return nil
}

// Delete removes a worker.
func (r *WorkerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM workers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("worker %d not found", id)
	}

	return nil
}

// Ensure WorkerRepository implements the interface.
var _ secondary.WorkerRepository = (*WorkerRepository)(nil)
