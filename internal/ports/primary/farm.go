package primary

import "context"

// FarmService defines the primary port for the farm operations entities:
// workers, equipment, sensors and spaces.
type FarmService interface {
	AddWorker(ctx context.Context, req WorkerRequest) (*Worker, error)
	ListWorkers(ctx context.Context) ([]*Worker, error)
	UpdateWorker(ctx context.Context, id int64, req WorkerRequest) (*Worker, error)
	DeleteWorker(ctx context.Context, id int64) error

	AddEquipment(ctx context.Context, req EquipmentRequest) (*Equipment, error)
	ListEquipment(ctx context.Context) ([]*Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, req EquipmentRequest) (*Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) error

	AddSensor(ctx context.Context, req SensorRequest) (*Sensor, error)
	ListSensors(ctx context.Context) ([]*Sensor, error)
	UpdateSensor(ctx context.Context, id int64, req SensorRequest) (*Sensor, error)
	DeleteSensor(ctx context.Context, id int64) error

	AddSpace(ctx context.Context, req SpaceRequest) (*Space, error)
	ListSpaces(ctx context.Context) ([]*Space, error)
	UpdateSpace(ctx context.Context, id int64, req SpaceRequest) (*Space, error)
	DeleteSpace(ctx context.Context, id int64) error
}

// WorkerRequest contains parameters for creating or updating a worker.
type WorkerRequest struct {
	Name        string
	HoursWorked int
	Leaves      int
	Role        string
	Contact     string
}

// Worker represents a worker at the port boundary.
type Worker struct {
	ID          int64
	Name        string
	HoursWorked int
	Leaves      int
	Role        string
	Contact     string
	CreatedAt   string
}

// EquipmentRequest contains parameters for creating or updating equipment.
type EquipmentRequest struct {
	Name            string
	Description     string
	PurchaseDate    string
	Condition       string
	LastMaintenance string
}

// Equipment represents a piece of equipment at the port boundary.
type Equipment struct {
	ID              int64
	Name            string
	Description     string
	PurchaseDate    string
	Condition       string
	LastMaintenance string
	CreatedAt       string
}

// SensorRequest contains parameters for creating or updating a sensor.
type SensorRequest struct {
	SensorType    string
	Location      string
	LastReading   float64
	LastReadingAt string
	Status        string
}

// Sensor represents a sensor at the port boundary.
type Sensor struct {
	ID            int64
	SensorType    string
	Location      string
	LastReading   float64
	LastReadingAt string
	Status        string
	CreatedAt     string
}

// SpaceRequest contains parameters for creating or updating a space.
type SpaceRequest struct {
	Name           string
	Type           string
	Capacity       int
	GrassCondition string
	Health         string
}

// Space represents a space at the port boundary.
type Space struct {
	ID             int64
	Name           string
	Type           string
	Capacity       int
	GrassCondition string
	Health         string
	CreatedAt      string
}
