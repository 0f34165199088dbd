package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/croft/internal/ports/secondary"
)

// SensorRepository implements secondary.SensorRepository with SQLite.
type SensorRepository struct {
	db *sql.DB
}

// NewSensorRepository creates a new SQLite sensor repository.
func NewSensorRepository(db *sql.DB) *SensorRepository {
	return &SensorRepository{db: db}
}

// Create persists a new sensor.
func (r *SensorRepository) Create(ctx context.Context, sensor *secondary.SensorRecord) (int64, error) {
	var readAt sql.NullString
	if sensor.LastReadingAt != "" {
		readAt = sql.NullString{String: sensor.LastReadingAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO sensors (sensor_type, location, last_reading, last_reading_at, status) VALUES (?, ?, ?, ?, ?)",
		sensor.SensorType, nullable(sensor.Location), sensor.LastReading, readAt, nullable(sensor.Status),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create sensor: %w", err)
	}
	return result.LastInsertId()
}

// GetByID retrieves a sensor by ID.
func (r *SensorRepository) GetByID(ctx context.Context, id int64) (*secondary.SensorRecord, error) {
	record, err := r.scanSensor(r.db.QueryRowContext(ctx,
		"SELECT id, sensor_type, location, last_reading, last_reading_at, status, created_at FROM sensors WHERE id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sensor %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sensor: %w", err)
	}
	return record, nil
}

// List retrieves all sensors ordered by type then location.
func (r *SensorRepository) List(ctx context.Context) ([]*secondary.SensorRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, sensor_type, location, last_reading, last_reading_at, status, created_at FROM sensors ORDER BY sensor_type ASC, location ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sensors: %w", err)
	}
	defer rows.Close()

	var sensors []*secondary.SensorRecord
	for rows.Next() {
		record, err := r.scanSensor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sensor: %w", err)
		}
		sensors = append(sensors, record)
	}

	return sensors, rows.Err()
}

// Update rewrites a sensor's fields, typically after a new reading.
func (r *SensorRepository) Update(ctx context.Context, sensor *secondary.SensorRecord) error {
	var readAt sql.NullString
	if sensor.LastReadingAt != "" {
		readAt = sql.NullString{String: sensor.LastReadingAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE sensors SET sensor_type = ?, location = ?, last_reading = ?, last_reading_at = ?, status = ? WHERE id = ?",
		sensor.SensorType, nullable(sensor.Location), sensor.LastReading, readAt, nullable(sensor.Status), sensor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sensor: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("sensor %d not found", sensor.ID)
	}

	return nil
}

// Delete removes a sensor.
func (r *SensorRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sensors WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete sensor: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("sensor %d not found", id)
	}

	return nil
}

func (r *SensorRepository) scanSensor(row scanner) (*secondary.SensorRecord, error) {
	var (
		location, status sql.NullString
		reading          sql.NullFloat64
		readAt           sql.NullTime
		createdAt        time.Time
	)

	record := &secondary.SensorRecord{}
	err := row.Scan(&record.ID, &record.SensorType, &location, &reading, &readAt, &status, &createdAt)
	if err != nil {
		return nil, err
	}

	record.Location = location.String
	record.LastReading = reading.Float64
	if readAt.Valid {
		record.LastReadingAt = readAt.Time.Format(time.RFC3339)
	}
	record.Status = status.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// Ensure SensorRepository implements the interface.
var _ secondary.SensorRepository = (*SensorRepository)(nil)
