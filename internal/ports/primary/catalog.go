package primary

import "context"

// CatalogService defines the primary port for the vaccine and disease
// lookup tables.
type CatalogService interface {
	// AddVaccine registers a new vaccine name. Duplicate names fail.
	AddVaccine(ctx context.Context, name string) (*CatalogEntry, error)

	// ListVaccines retrieves all vaccines ordered by name.
	ListVaccines(ctx context.Context) ([]*CatalogEntry, error)

	// DeleteVaccine removes a vaccine by name; links to goats cascade away.
	DeleteVaccine(ctx context.Context, name string) error

	// AddDisease registers a new disease name. Duplicate names fail.
	AddDisease(ctx context.Context, name string) (*CatalogEntry, error)

	// ListDiseases retrieves all diseases ordered by name.
	ListDiseases(ctx context.Context) ([]*CatalogEntry, error)

	// DeleteDisease removes a disease by name; links to goats cascade away.
	DeleteDisease(ctx context.Context, name string) error
}

// CatalogEntry represents a vaccine or disease at the port boundary.
type CatalogEntry struct {
	ID        int64
	Name      string
	CreatedAt string
	GoatCount int
}
