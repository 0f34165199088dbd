// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/croft/internal/ports/secondary"
)

// GoatRepository implements secondary.GoatRepository with SQLite.
type GoatRepository struct {
	db *sql.DB
}

// NewGoatRepository creates a new SQLite goat repository.
func NewGoatRepository(db *sql.DB) *GoatRepository {
	return &GoatRepository{db: db}
}

// Create persists a new goat and links its vaccines and diseases in a
// single transaction. Vaccine and disease names that are not in the lookup
// tables yet are inserted first.
func (r *GoatRepository) Create(ctx context.Context, goat *secondary.GoatRecord) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO goats (breed, name, gender, offspring, cost, weight, current_price, diet, last_bred, health_status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		goat.Breed, goat.Name, goat.Gender, goat.Offspring,
		goat.Cost, goat.Weight, goat.CurrentPrice,
		nullable(goat.Diet), nullable(goat.LastBred), nullable(goat.HealthStatus),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create goat: %w", err)
	}

	goatID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get goat id: %w", err)
	}

	for _, v := range goat.Vaccinations {
		vaccineID, err := getOrInsertLookup(ctx, tx, "vaccines", v.Name)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO goat_vaccines (goat_id, vaccine_id) VALUES (?, ?)",
			goatID, vaccineID,
		); err != nil {
			return 0, fmt.Errorf("failed to link vaccine %s: %w", v.Name, err)
		}
	}

	for _, d := range goat.Diseases {
		diseaseID, err := getOrInsertLookup(ctx, tx, "diseases", d.Name)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO goat_diseases (goat_id, disease_id) VALUES (?, ?)",
			goatID, diseaseID,
		); err != nil {
			return 0, fmt.Errorf("failed to link disease %s: %w", d.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit goat creation: %w", err)
	}

	return goatID, nil
}

// GetByID retrieves a goat with its vaccination and disease refs.
func (r *GoatRepository) GetByID(ctx context.Context, id int64) (*secondary.GoatRecord, error) {
	record, err := r.scanGoat(r.db.QueryRowContext(ctx,
		`SELECT id, breed, name, gender, offspring, cost, weight, current_price, diet, last_bred, health_status, created_at
		 FROM goats WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goat %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goat: %w", err)
	}

	if err := r.loadRefs(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// List retrieves all goats with their vaccination and disease refs,
// ordered by name.
func (r *GoatRepository) List(ctx context.Context) ([]*secondary.GoatRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, breed, name, gender, offspring, cost, weight, current_price, diet, last_bred, health_status, created_at
		 FROM goats ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list goats: %w", err)
	}
	defer rows.Close()

	var goats []*secondary.GoatRecord
	for rows.Next() {
		record, err := r.scanGoat(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goat: %w", err)
		}
		goats = append(goats, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goats: %w", err)
	}

	for _, g := range goats {
		if err := r.loadRefs(ctx, g); err != nil {
			return nil, err
		}
	}

	return goats, nil
}

// Update rewrites the goat's fields and replaces its association links.
func (r *GoatRepository) Update(ctx context.Context, goat *secondary.GoatRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE goats
		 SET breed = ?, name = ?, gender = ?, offspring = ?, cost = ?, weight = ?, current_price = ?, diet = ?, last_bred = ?, health_status = ?
		 WHERE id = ?`,
		goat.Breed, goat.Name, goat.Gender, goat.Offspring,
		goat.Cost, goat.Weight, goat.CurrentPrice,
		nullable(goat.Diet), nullable(goat.LastBred), nullable(goat.HealthStatus),
		goat.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goat: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("goat %d not found", goat.ID)
	}

	// Replace association links wholesale
	if _, err := tx.ExecContext(ctx, "DELETE FROM goat_vaccines WHERE goat_id = ?", goat.ID); err != nil {
		return fmt.Errorf("failed to clear vaccine links: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM goat_diseases WHERE goat_id = ?", goat.ID); err != nil {
		return fmt.Errorf("failed to clear disease links: %w", err)
	}

	for _, v := range goat.Vaccinations {
		vaccineID, err := getOrInsertLookup(ctx, tx, "vaccines", v.Name)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO goat_vaccines (goat_id, vaccine_id) VALUES (?, ?)",
			goat.ID, vaccineID,
		); err != nil {
			return fmt.Errorf("failed to link vaccine %s: %w", v.Name, err)
		}
	}
	for _, d := range goat.Diseases {
		diseaseID, err := getOrInsertLookup(ctx, tx, "diseases", d.Name)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO goat_diseases (goat_id, disease_id) VALUES (?, ?)",
			goat.ID, diseaseID,
		); err != nil {
			return fmt.Errorf("failed to link disease %s: %w", d.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit goat update: %w", err)
	}

	return nil
}

// Delete removes a goat. Association rows cascade away with it.
func (r *GoatRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM goats WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete goat: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("goat %d not found", id)
	}

	return nil
}

// AddVaccination links an existing vaccine to a goat.
func (r *GoatRepository) AddVaccination(ctx context.Context, goatID, vaccineID int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO goat_vaccines (goat_id, vaccine_id) VALUES (?, ?)",
		goatID, vaccineID,
	)
	if err != nil {
		return fmt.Errorf("failed to link vaccine %d to goat %d: %w", vaccineID, goatID, err)
	}
	return nil
}

// RemoveVaccination unlinks a vaccine from a goat.
func (r *GoatRepository) RemoveVaccination(ctx context.Context, goatID, vaccineID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM goat_vaccines WHERE goat_id = ? AND vaccine_id = ?",
		goatID, vaccineID,
	)
	if err != nil {
		return fmt.Errorf("failed to unlink vaccine: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("goat %d has no vaccination %d", goatID, vaccineID)
	}
	return nil
}

// AddDiagnosis links an existing disease to a goat.
func (r *GoatRepository) AddDiagnosis(ctx context.Context, goatID, diseaseID int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO goat_diseases (goat_id, disease_id) VALUES (?, ?)",
		goatID, diseaseID,
	)
	if err != nil {
		return fmt.Errorf("failed to link disease %d to goat %d: %w", diseaseID, goatID, err)
	}
	return nil
}

// RemoveDiagnosis unlinks a disease from a goat.
func (r *GoatRepository) RemoveDiagnosis(ctx context.Context, goatID, diseaseID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM goat_diseases WHERE goat_id = ? AND disease_id = ?",
		goatID, diseaseID,
	)
	if err != nil {
		return fmt.Errorf("failed to unlink disease: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("goat %d has no diagnosis %d", goatID, diseaseID)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan code.
type scanner interface {
	Scan(dest ...any) error
}

func (r *GoatRepository) scanGoat(row scanner) (*secondary.GoatRecord, error) {
	var (
		cost, weight, price sql.NullFloat64
		offspring           sql.NullInt64
		diet, lastBred      sql.NullString
		healthStatus        sql.NullString
		createdAt           time.Time
	)

	record := &secondary.GoatRecord{}
	err := row.Scan(
		&record.ID, &record.Breed, &record.Name, &record.Gender,
		&offspring, &cost, &weight, &price,
		&diet, &lastBred, &healthStatus, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.Offspring = int(offspring.Int64)
	record.Cost = cost.Float64
	record.Weight = weight.Float64
	record.CurrentPrice = price.Float64
	record.Diet = diet.String
	record.LastBred = lastBred.String
	record.HealthStatus = healthStatus.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// loadRefs populates the vaccination and disease refs for a goat.
func (r *GoatRepository) loadRefs(ctx context.Context, goat *secondary.GoatRecord) error {
	vaccinations, err := r.queryRefs(ctx,
		`SELECT v.id, v.name FROM vaccines v
		 INNER JOIN goat_vaccines gv ON v.id = gv.vaccine_id
		 WHERE gv.goat_id = ? ORDER BY v.name ASC`, goat.ID)
	if err != nil {
		return fmt.Errorf("failed to load vaccinations for goat %d: %w", goat.ID, err)
	}
	goat.Vaccinations = vaccinations

	diseases, err := r.queryRefs(ctx,
		`SELECT d.id, d.name FROM diseases d
		 INNER JOIN goat_diseases gd ON d.id = gd.disease_id
		 WHERE gd.goat_id = ? ORDER BY d.name ASC`, goat.ID)
	if err != nil {
		return fmt.Errorf("failed to load diseases for goat %d: %w", goat.ID, err)
	}
	goat.Diseases = diseases

	return nil
}

func (r *GoatRepository) queryRefs(ctx context.Context, query string, goatID int64) ([]secondary.NameRef, error) {
	rows, err := r.db.QueryContext(ctx, query, goatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []secondary.NameRef
	for rows.Next() {
		var ref secondary.NameRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// getOrInsertLookup resolves a vaccine/disease name to its id, inserting the
// row if the name is new. table is always a compile-time constant.
func getOrInsertLookup(ctx context.Context, tx *sql.Tx, table, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE name = ?", table), name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up %s %q: %w", table, name, err)
	}

	result, err := tx.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (name) VALUES (?)", table), name,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s %q: %w", table, name, err)
	}
	return result.LastInsertId()
}

// nullable converts an empty string to a SQL NULL.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure GoatRepository implements the interface.
var _ secondary.GoatRepository = (*GoatRepository)(nil)
