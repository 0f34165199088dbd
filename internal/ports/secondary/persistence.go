// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// GoatRepository defines the secondary port for goat persistence.
type GoatRepository interface {
	// Create persists a new goat together with its vaccination and disease
	// links in a single transaction. Named vaccines/diseases that do not
	// exist yet are inserted on the fly.
	Create(ctx context.Context, goat *GoatRecord) (int64, error)

	// GetByID retrieves a goat with its vaccination and disease refs.
	GetByID(ctx context.Context, id int64) (*GoatRecord, error)

	// List retrieves all goats with their vaccination and disease refs.
	List(ctx context.Context) ([]*GoatRecord, error)

	// Update rewrites a goat's fields and replaces its association links
	// in a single transaction.
	Update(ctx context.Context, goat *GoatRecord) error

	// Delete removes a goat. The engine cascades the delete to the
	// goat_vaccines and goat_diseases rows referencing it.
	Delete(ctx context.Context, id int64) error

	// AddVaccination links an existing vaccine to a goat.
	AddVaccination(ctx context.Context, goatID, vaccineID int64) error

	// RemoveVaccination unlinks a vaccine from a goat.
	RemoveVaccination(ctx context.Context, goatID, vaccineID int64) error

	// AddDiagnosis links an existing disease to a goat.
	AddDiagnosis(ctx context.Context, goatID, diseaseID int64) error

	// RemoveDiagnosis unlinks a disease from a goat.
	RemoveDiagnosis(ctx context.Context, goatID, diseaseID int64) error
}

// GoatRecord represents a goat as stored in persistence.
type GoatRecord struct {
	ID           int64
	Breed        string
	Name         string
	Gender       string
	Offspring    int
	Cost         float64
	Weight       float64
	CurrentPrice float64
	Diet         string
	LastBred     string // ISO date, empty if never bred
	HealthStatus string
	CreatedAt    string
	Vaccinations []NameRef
	Diseases     []NameRef
}

// NameRef is a reference to a named lookup row (vaccine or disease).
type NameRef struct {
	ID   int64
	Name string
}

// LookupRepository defines the secondary port shared by the vaccine and
// disease lookup tables. Both are id+unique-name rows with identical access
// patterns.
type LookupRepository interface {
	// Create persists a new named entry. Fails on duplicate names.
	Create(ctx context.Context, name string) (int64, error)

	// GetByID retrieves an entry by its ID.
	GetByID(ctx context.Context, id int64) (*LookupRecord, error)

	// GetByName retrieves an entry by its unique name.
	GetByName(ctx context.Context, name string) (*LookupRecord, error)

	// List retrieves all entries ordered by name.
	List(ctx context.Context) ([]*LookupRecord, error)

	// Delete removes an entry. The engine cascades the delete to the
	// association rows referencing it; goats themselves are untouched.
	Delete(ctx context.Context, id int64) error

	// GoatsWith returns the ids of goats linked to the entry.
	GoatsWith(ctx context.Context, id int64) ([]int64, error)
}

// LookupRecord represents a vaccine or disease as stored in persistence.
type LookupRecord struct {
	ID        int64
	Name      string
	CreatedAt string
}

// WorkerRepository defines the secondary port for worker persistence.
type WorkerRepository interface {
	Create(ctx context.Context, worker *WorkerRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*WorkerRecord, error)
	List(ctx context.Context) ([]*WorkerRecord, error)
	Update(ctx context.Context, worker *WorkerRecord) error
	Delete(ctx context.Context, id int64) error
}

// WorkerRecord represents a worker as stored in persistence.
type WorkerRecord struct {
	ID          int64
	Name        string
	HoursWorked int
	Leaves      int
	Role        string
	Contact     string
	CreatedAt   string
}

// EquipmentRepository defines the secondary port for equipment persistence.
type EquipmentRepository interface {
	Create(ctx context.Context, eq *EquipmentRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*EquipmentRecord, error)
	List(ctx context.Context) ([]*EquipmentRecord, error)
	Update(ctx context.Context, eq *EquipmentRecord) error
	Delete(ctx context.Context, id int64) error
}

// EquipmentRecord represents a piece of equipment as stored in persistence.
type EquipmentRecord struct {
	ID              int64
	Name            string
	Description     string
	PurchaseDate    string
	Condition       string
	LastMaintenance string
	CreatedAt       string
}

// SensorRepository defines the secondary port for sensor persistence.
type SensorRepository interface {
	Create(ctx context.Context, sensor *SensorRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*SensorRecord, error)
	List(ctx context.Context) ([]*SensorRecord, error)
	Update(ctx context.Context, sensor *SensorRecord) error
	Delete(ctx context.Context, id int64) error
}

// SensorRecord represents a sensor as stored in persistence.
type SensorRecord struct {
	ID            int64
	SensorType    string
	Location      string
	LastReading   float64
	LastReadingAt string // empty if the sensor never reported
	Status        string
	CreatedAt     string
}

// SpaceRepository defines the secondary port for space persistence.
type SpaceRepository interface {
	Create(ctx context.Context, space *SpaceRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*SpaceRecord, error)
	List(ctx context.Context) ([]*SpaceRecord, error)
	Update(ctx context.Context, space *SpaceRecord) error
	Delete(ctx context.Context, id int64) error
}

// SpaceRecord represents a space as stored in persistence.
type SpaceRecord struct {
	ID             int64
	Name           string
	Type           string
	Capacity       int
	GrassCondition string
	Health         string
	CreatedAt      string
}
