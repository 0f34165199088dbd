package app

import (
	"context"
	"fmt"

	"github.com/example/croft/internal/ports/secondary"
)

// Ensure the mocks implement the interfaces
var (
	_ secondary.GoatRepository      = (*mockGoatRepository)(nil)
	_ secondary.LookupRepository    = (*mockLookupRepository)(nil)
	_ secondary.WorkerRepository    = (*mockWorkerRepository)(nil)
	_ secondary.EquipmentRepository = (*mockEquipmentRepository)(nil)
	_ secondary.SensorRepository    = (*mockSensorRepository)(nil)
	_ secondary.SpaceRepository     = (*mockSpaceRepository)(nil)
)

// mockGoatRepository implements secondary.GoatRepository for testing.
type mockGoatRepository struct {
	goats     map[int64]*secondary.GoatRecord
	nextID    int64
	createErr error
	updateErr error
	deleteErr error
}

func newMockGoatRepository() *mockGoatRepository {
	return &mockGoatRepository{
		goats:  make(map[int64]*secondary.GoatRecord),
		nextID: 1,
	}
}

func (m *mockGoatRepository) Create(ctx context.Context, goat *secondary.GoatRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	id := m.nextID
	m.nextID++
	stored := *goat
	stored.ID = id
	stored.CreatedAt = "2025-01-01 00:00:00"
	m.goats[id] = &stored
	return id, nil
}

func (m *mockGoatRepository) GetByID(ctx context.Context, id int64) (*secondary.GoatRecord, error) {
	goat, ok := m.goats[id]
	if !ok {
		return nil, fmt.Errorf("goat with id %d not found", id)
	}
	return goat, nil
}

func (m *mockGoatRepository) List(ctx context.Context) ([]*secondary.GoatRecord, error) {
	var records []*secondary.GoatRecord
	for id := int64(1); id < m.nextID; id++ {
		if goat, ok := m.goats[id]; ok {
			records = append(records, goat)
		}
	}
	return records, nil
}

func (m *mockGoatRepository) Update(ctx context.Context, goat *secondary.GoatRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	existing, ok := m.goats[goat.ID]
	if !ok {
		return fmt.Errorf("goat with id %d not found", goat.ID)
	}
	stored := *goat
	stored.CreatedAt = existing.CreatedAt
	m.goats[goat.ID] = &stored
	return nil
}

func (m *mockGoatRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.goats[id]; !ok {
		return fmt.Errorf("goat with id %d not found", id)
	}
	delete(m.goats, id)
	return nil
}

func (m *mockGoatRepository) AddVaccination(ctx context.Context, goatID, vaccineID int64) error {
	goat, ok := m.goats[goatID]
	if !ok {
		return fmt.Errorf("goat with id %d not found", goatID)
	}
	goat.Vaccinations = append(goat.Vaccinations, secondary.NameRef{ID: vaccineID})
	return nil
}

func (m *mockGoatRepository) RemoveVaccination(ctx context.Context, goatID, vaccineID int64) error {
	goat, ok := m.goats[goatID]
	if !ok {
		return fmt.Errorf("goat with id %d not found", goatID)
	}
	for i, ref := range goat.Vaccinations {
		if ref.ID == vaccineID {
			goat.Vaccinations = append(goat.Vaccinations[:i], goat.Vaccinations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("vaccination link not found")
}

func (m *mockGoatRepository) AddDiagnosis(ctx context.Context, goatID, diseaseID int64) error {
	goat, ok := m.goats[goatID]
	if !ok {
		return fmt.Errorf("goat with id %d not found", goatID)
	}
	goat.Diseases = append(goat.Diseases, secondary.NameRef{ID: diseaseID})
	return nil
}

func (m *mockGoatRepository) RemoveDiagnosis(ctx context.Context, goatID, diseaseID int64) error {
	goat, ok := m.goats[goatID]
	if !ok {
		return fmt.Errorf("goat with id %d not found", goatID)
	}
	for i, ref := range goat.Diseases {
		if ref.ID == diseaseID {
			goat.Diseases = append(goat.Diseases[:i], goat.Diseases[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("diagnosis link not found")
}

// mockLookupRepository implements secondary.LookupRepository for testing.
type mockLookupRepository struct {
	entries   map[int64]*secondary.LookupRecord
	links     map[int64][]int64 // entry id -> goat ids
	nextID    int64
	createErr error
}

func newMockLookupRepository() *mockLookupRepository {
	return &mockLookupRepository{
		entries: make(map[int64]*secondary.LookupRecord),
		links:   make(map[int64][]int64),
		nextID:  1,
	}
}

func (m *mockLookupRepository) Create(ctx context.Context, name string) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	for _, e := range m.entries {
		if e.Name == name {
			return 0, fmt.Errorf("UNIQUE constraint failed")
		}
	}
	id := m.nextID
	m.nextID++
	m.entries[id] = &secondary.LookupRecord{ID: id, Name: name, CreatedAt: "2025-01-01 00:00:00"}
	return id, nil
}

func (m *mockLookupRepository) GetByID(ctx context.Context, id int64) (*secondary.LookupRecord, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, fmt.Errorf("entry with id %d not found", id)
	}
	return entry, nil
}

func (m *mockLookupRepository) GetByName(ctx context.Context, name string) (*secondary.LookupRecord, error) {
	for _, e := range m.entries {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("entry %q not found", name)
}

func (m *mockLookupRepository) List(ctx context.Context) ([]*secondary.LookupRecord, error) {
	var records []*secondary.LookupRecord
	for id := int64(1); id < m.nextID; id++ {
		if entry, ok := m.entries[id]; ok {
			records = append(records, entry)
		}
	}
	return records, nil
}

func (m *mockLookupRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.entries[id]; !ok {
		return fmt.Errorf("entry with id %d not found", id)
	}
	delete(m.entries, id)
	delete(m.links, id)
	return nil
}

func (m *mockLookupRepository) GoatsWith(ctx context.Context, id int64) ([]int64, error) {
	return m.links[id], nil
}

// mockWorkerRepository implements secondary.WorkerRepository for testing.
type mockWorkerRepository struct {
	workers map[int64]*secondary.WorkerRecord
	nextID  int64
}

func newMockWorkerRepository() *mockWorkerRepository {
	return &mockWorkerRepository{
		workers: make(map[int64]*secondary.WorkerRecord),
		nextID:  1,
	}
}

func (m *mockWorkerRepository) Create(ctx context.Context, worker *secondary.WorkerRecord) (int64, error) {
	id := m.nextID
	m.nextID++
	stored := *worker
	stored.ID = id
	stored.CreatedAt = "2025-01-01 00:00:00"
	m.workers[id] = &stored
	return id, nil
}

func (m *mockWorkerRepository) GetByID(ctx context.Context, id int64) (*secondary.WorkerRecord, error) {
	worker, ok := m.workers[id]
	if !ok {
		return nil, fmt.Errorf("worker with id %d not found", id)
	}
	return worker, nil
}

func (m *mockWorkerRepository) List(ctx context.Context) ([]*secondary.WorkerRecord, error) {
	var records []*secondary.WorkerRecord
	for id := int64(1); id < m.nextID; id++ {
		if worker, ok := m.workers[id]; ok {
			records = append(records, worker)
		}
	}
	return records, nil
}

func (m *mockWorkerRepository) Update(ctx context.Context, worker *secondary.WorkerRecord) error {
	if _, ok := m.workers[worker.ID]; !ok {
		return fmt.Errorf("worker with id %d not found", worker.ID)
	}
	stored := *worker
	m.workers[worker.ID] = &stored
	return nil
}

func (m *mockWorkerRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.workers[id]; !ok {
		return fmt.Errorf("worker with id %d not found", id)
	}
	delete(m.workers, id)
	return nil
}

// mockEquipmentRepository implements secondary.EquipmentRepository for testing.
type mockEquipmentRepository struct {
	items  map[int64]*secondary.EquipmentRecord
	nextID int64
}

func newMockEquipmentRepository() *mockEquipmentRepository {
	return &mockEquipmentRepository{
		items:  make(map[int64]*secondary.EquipmentRecord),
		nextID: 1,
	}
}

func (m *mockEquipmentRepository) Create(ctx context.Context, eq *secondary.EquipmentRecord) (int64, error) {
	id := m.nextID
	m.nextID++
	stored := *eq
	stored.ID = id
	stored.CreatedAt = "2025-01-01 00:00:00"
	m.items[id] = &stored
	return id, nil
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, id int64) (*secondary.EquipmentRecord, error) {
	eq, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("equipment with id %d not found", id)
	}
	return eq, nil
}

func (m *mockEquipmentRepository) List(ctx context.Context) ([]*secondary.EquipmentRecord, error) {
	var records []*secondary.EquipmentRecord
	for id := int64(1); id < m.nextID; id++ {
		if eq, ok := m.items[id]; ok {
			records = append(records, eq)
		}
	}
	return records, nil
}

func (m *mockEquipmentRepository) Update(ctx context.Context, eq *secondary.EquipmentRecord) error {
	if _, ok := m.items[eq.ID]; !ok {
		return fmt.Errorf("equipment with id %d not found", eq.ID)
	}
	stored := *eq
	m.items[eq.ID] = &stored
	return nil
}

func (m *mockEquipmentRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("equipment with id %d not found", id)
	}
	delete(m.items, id)
	return nil
}

// mockSensorRepository implements secondary.SensorRepository for testing.
type mockSensorRepository struct {
	sensors map[int64]*secondary.SensorRecord
	nextID  int64
}

func newMockSensorRepository() *mockSensorRepository {
	return &mockSensorRepository{
		sensors: make(map[int64]*secondary.SensorRecord),
		nextID:  1,
	}
}

func (m *mockSensorRepository) Create(ctx context.Context, sensor *secondary.SensorRecord) (int64, error) {
	id := m.nextID
	m.nextID++
	stored := *sensor
	stored.ID = id
	stored.CreatedAt = "2025-01-01 00:00:00"
	m.sensors[id] = &stored
	return id, nil
}

func (m *mockSensorRepository) GetByID(ctx context.Context, id int64) (*secondary.SensorRecord, error) {
	sensor, ok := m.sensors[id]
	if !ok {
		return nil, fmt.Errorf("sensor with id %d not found", id)
	}
	return sensor, nil
}

func (m *mockSensorRepository) List(ctx context.Context) ([]*secondary.SensorRecord, error) {
	var records []*secondary.SensorRecord
	for id := int64(1); id < m.nextID; id++ {
		if sensor, ok := m.sensors[id]; ok {
			records = append(records, sensor)
		}
	}
	return records, nil
}

func (m *mockSensorRepository) Update(ctx context.Context, sensor *secondary.SensorRecord) error {
	if _, ok := m.sensors[sensor.ID]; !ok {
		return fmt.Errorf("sensor with id %d not found", sensor.ID)
	}
	stored := *sensor
	m.sensors[sensor.ID] = &stored
	return nil
}

func (m *mockSensorRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.sensors[id]; !ok {
		return fmt.Errorf("sensor with id %d not found", id)
	}
	delete(m.sensors, id)
	return nil
}

// mockSpaceRepository implements secondary.SpaceRepository for testing.
type mockSpaceRepository struct {
	spaces map[int64]*secondary.SpaceRecord
	nextID int64
}

func newMockSpaceRepository() *mockSpaceRepository {
	return &mockSpaceRepository{
		spaces: make(map[int64]*secondary.SpaceRecord),
		nextID: 1,
	}
}

func (m *mockSpaceRepository) Create(ctx context.Context, space *secondary.SpaceRecord) (int64, error) {
	id := m.nextID
	m.nextID++
	stored := *space
	stored.ID = id
	stored.CreatedAt = "2025-01-01 00:00:00"
	m.spaces[id] = &stored
	return id, nil
}

func (m *mockSpaceRepository) GetByID(ctx context.Context, id int64) (*secondary.SpaceRecord, error) {
	space, ok := m.spaces[id]
	if !ok {
		return nil, fmt.Errorf("space with id %d not found", id)
	}
	return space, nil
}

func (m *mockSpaceRepository) List(ctx context.Context) ([]*secondary.SpaceRecord, error) {
	var records []*secondary.SpaceRecord
	for id := int64(1); id < m.nextID; id++ {
		if space, ok := m.spaces[id]; ok {
			records = append(records, space)
		}
	}
	return records, nil
}

func (m *mockSpaceRepository) Update(ctx context.Context, space *secondary.SpaceRecord) error {
	if _, ok := m.spaces[space.ID]; !ok {
		return fmt.Errorf("space with id %d not found", space.ID)
	}
	stored := *space
	m.spaces[space.ID] = &stored
	return nil
}

func (m *mockSpaceRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.spaces[id]; !ok {
		return fmt.Errorf("space with id %d not found", id)
	}
	delete(m.spaces, id)
	return nil
}
