// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// GoatService defines the primary port for goat operations.
type GoatService interface {
	// CreateGoat registers a new goat, optionally linking named vaccines
	// and diseases (created on the fly if unknown).
	CreateGoat(ctx context.Context, req CreateGoatRequest) (*Goat, error)

	// GetGoat retrieves a goat with its vaccination and disease refs.
	GetGoat(ctx context.Context, id int64) (*Goat, error)

	// ListGoats retrieves all goats.
	ListGoats(ctx context.Context) ([]*Goat, error)

	// UpdateGoat rewrites a goat's fields and association links.
	UpdateGoat(ctx context.Context, req UpdateGoatRequest) (*Goat, error)

	// DeleteGoat removes a goat and its association rows.
	DeleteGoat(ctx context.Context, id int64) error

	// Vaccinate links the named vaccine to a goat.
	Vaccinate(ctx context.Context, goatID int64, vaccineName string) error

	// Unvaccinate unlinks the named vaccine from a goat.
	Unvaccinate(ctx context.Context, goatID int64, vaccineName string) error

	// Diagnose links the named disease to a goat.
	Diagnose(ctx context.Context, goatID int64, diseaseName string) error

	// ClearDiagnosis unlinks the named disease from a goat.
	ClearDiagnosis(ctx context.Context, goatID int64, diseaseName string) error
}

// CreateGoatRequest contains parameters for registering a goat.
type CreateGoatRequest struct {
	Breed        string
	Name         string
	Gender       string
	Offspring    int
	Cost         float64
	Weight       float64
	CurrentPrice float64
	Diet         string
	LastBred     string
	HealthStatus string
	Vaccinations []string
	Diseases     []string
}

// UpdateGoatRequest contains the full replacement state for a goat.
type UpdateGoatRequest struct {
	ID int64
	CreateGoatRequest
}

// Goat represents a goat at the port boundary.
type Goat struct {
	ID           int64
	Breed        string
	Name         string
	Gender       string
	Offspring    int
	Cost         float64
	Weight       float64
	CurrentPrice float64
	Diet         string
	LastBred     string
	HealthStatus string
	CreatedAt    string
	Vaccinations []string
	Diseases     []string
}
