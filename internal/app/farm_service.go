package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/croft/internal/core/space"
	"github.com/example/croft/internal/ports/primary"
	"github.com/example/croft/internal/ports/secondary"
)

// FarmServiceImpl implements the FarmService interface over the worker,
// equipment, sensor and space repositories.
type FarmServiceImpl struct {
	workerRepo    secondary.WorkerRepository
	equipmentRepo secondary.EquipmentRepository
	sensorRepo    secondary.SensorRepository
	spaceRepo     secondary.SpaceRepository
	log           *zap.Logger
}

// NewFarmService creates a new FarmService with injected dependencies.
func NewFarmService(
	workerRepo secondary.WorkerRepository,
	equipmentRepo secondary.EquipmentRepository,
	sensorRepo secondary.SensorRepository,
	spaceRepo secondary.SpaceRepository,
	log *zap.Logger,
) *FarmServiceImpl {
	return &FarmServiceImpl{
		workerRepo:    workerRepo,
		equipmentRepo: equipmentRepo,
		sensorRepo:    sensorRepo,
		spaceRepo:     spaceRepo,
		log:           log,
	}
}

// Workers

// AddWorker registers a new worker.
func (s *FarmServiceImpl) AddWorker(ctx context.Context, req primary.WorkerRequest) (*primary.Worker, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("worker name is required")
	}
	if req.HoursWorked < 0 || req.Leaves < 0 {
		return nil, fmt.Errorf("hours worked and leaves cannot be negative")
	}

	id, err := s.workerRepo.Create(ctx, workerRecordFromRequest(0, req))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}
	s.log.Info("registered worker", zap.Int64("id", id), zap.String("name", req.Name))

	record, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return workerFromRecord(record), nil
}

// ListWorkers retrieves all workers.
func (s *FarmServiceImpl) ListWorkers(ctx context.Context) ([]*primary.Worker, error) {
	records, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	workers := make([]*primary.Worker, len(records))
	for i, r := range records {
		workers[i] = workerFromRecord(r)
	}
	return workers, nil
}

// UpdateWorker rewrites a worker's fields.
func (s *FarmServiceImpl) UpdateWorker(ctx context.Context, id int64, req primary.WorkerRequest) (*primary.Worker, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("worker name is required")
	}
	if req.HoursWorked < 0 || req.Leaves < 0 {
		return nil, fmt.Errorf("hours worked and leaves cannot be negative")
	}

	if err := s.workerRepo.Update(ctx, workerRecordFromRequest(id, req)); err != nil {
		return nil, err
	}
	record, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return workerFromRecord(record), nil
}

// DeleteWorker removes a worker.
func (s *FarmServiceImpl) DeleteWorker(ctx context.Context, id int64) error {
	if err := s.workerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted worker", zap.Int64("id", id))
	return nil
}

// Equipment

// AddEquipment registers a new piece of equipment.
func (s *FarmServiceImpl) AddEquipment(ctx context.Context, req primary.EquipmentRequest) (*primary.Equipment, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("equipment name is required")
	}

	id, err := s.equipmentRepo.Create(ctx, equipmentRecordFromRequest(0, req))
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}
	s.log.Info("registered equipment", zap.Int64("id", id), zap.String("name", req.Name))

	record, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return equipmentFromRecord(record), nil
}

// ListEquipment retrieves all equipment.
func (s *FarmServiceImpl) ListEquipment(ctx context.Context) ([]*primary.Equipment, error) {
	records, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*primary.Equipment, len(records))
	for i, r := range records {
		items[i] = equipmentFromRecord(r)
	}
	return items, nil
}

// UpdateEquipment rewrites an equipment row's fields.
func (s *FarmServiceImpl) UpdateEquipment(ctx context.Context, id int64, req primary.EquipmentRequest) (*primary.Equipment, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("equipment name is required")
	}

	if err := s.equipmentRepo.Update(ctx, equipmentRecordFromRequest(id, req)); err != nil {
		return nil, err
	}
	record, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return equipmentFromRecord(record), nil
}

// DeleteEquipment removes a piece of equipment.
func (s *FarmServiceImpl) DeleteEquipment(ctx context.Context, id int64) error {
	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted equipment", zap.Int64("id", id))
	return nil
}

// Sensors

// AddSensor registers a new sensor.
func (s *FarmServiceImpl) AddSensor(ctx context.Context, req primary.SensorRequest) (*primary.Sensor, error) {
	if req.SensorType == "" {
		return nil, fmt.Errorf("sensor type is required")
	}

	id, err := s.sensorRepo.Create(ctx, sensorRecordFromRequest(0, req))
	if err != nil {
		return nil, fmt.Errorf("failed to create sensor: %w", err)
	}
	s.log.Info("registered sensor",
		zap.Int64("id", id),
		zap.String("type", req.SensorType),
		zap.String("location", req.Location),
	)

	record, err := s.sensorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sensorFromRecord(record), nil
}

// ListSensors retrieves all sensors.
func (s *FarmServiceImpl) ListSensors(ctx context.Context) ([]*primary.Sensor, error) {
	records, err := s.sensorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sensors := make([]*primary.Sensor, len(records))
	for i, r := range records {
		sensors[i] = sensorFromRecord(r)
	}
	return sensors, nil
}

// UpdateSensor rewrites a sensor's fields, including its latest reading.
func (s *FarmServiceImpl) UpdateSensor(ctx context.Context, id int64, req primary.SensorRequest) (*primary.Sensor, error) {
	if req.SensorType == "" {
		return nil, fmt.Errorf("sensor type is required")
	}

	if err := s.sensorRepo.Update(ctx, sensorRecordFromRequest(id, req)); err != nil {
		return nil, err
	}
	record, err := s.sensorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sensorFromRecord(record), nil
}

// DeleteSensor removes a sensor.
func (s *FarmServiceImpl) DeleteSensor(ctx context.Context, id int64) error {
	if err := s.sensorRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted sensor", zap.Int64("id", id))
	return nil
}

// Spaces

// AddSpace registers a new space after validating its type.
func (s *FarmServiceImpl) AddSpace(ctx context.Context, req primary.SpaceRequest) (*primary.Space, error) {
	guard := space.CanCreateSpace(space.CreateSpaceContext{
		Name:     req.Name,
		Type:     req.Type,
		Capacity: req.Capacity,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	id, err := s.spaceRepo.Create(ctx, spaceRecordFromRequest(0, req))
	if err != nil {
		return nil, fmt.Errorf("failed to create space: %w", err)
	}
	s.log.Info("registered space",
		zap.Int64("id", id),
		zap.String("name", req.Name),
		zap.String("type", req.Type),
	)

	record, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return spaceFromRecord(record), nil
}

// ListSpaces retrieves all spaces.
func (s *FarmServiceImpl) ListSpaces(ctx context.Context) ([]*primary.Space, error) {
	records, err := s.spaceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	spaces := make([]*primary.Space, len(records))
	for i, r := range records {
		spaces[i] = spaceFromRecord(r)
	}
	return spaces, nil
}

// UpdateSpace rewrites a space's fields after validating its type.
func (s *FarmServiceImpl) UpdateSpace(ctx context.Context, id int64, req primary.SpaceRequest) (*primary.Space, error) {
	guard := space.CanCreateSpace(space.CreateSpaceContext{
		Name:     req.Name,
		Type:     req.Type,
		Capacity: req.Capacity,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	if err := s.spaceRepo.Update(ctx, spaceRecordFromRequest(id, req)); err != nil {
		return nil, err
	}
	record, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return spaceFromRecord(record), nil
}

// DeleteSpace removes a space.
func (s *FarmServiceImpl) DeleteSpace(ctx context.Context, id int64) error {
	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted space", zap.Int64("id", id))
	return nil
}

// Helper mappers

func workerRecordFromRequest(id int64, req primary.WorkerRequest) *secondary.WorkerRecord {
	return &secondary.WorkerRecord{
		ID:          id,
		Name:        req.Name,
		HoursWorked: req.HoursWorked,
		Leaves:      req.Leaves,
		Role:        req.Role,
		Contact:     req.Contact,
	}
}

func workerFromRecord(r *secondary.WorkerRecord) *primary.Worker {
	return &primary.Worker{
		ID:          r.ID,
		Name:        r.Name,
		HoursWorked: r.HoursWorked,
		Leaves:      r.Leaves,
		Role:        r.Role,
		Contact:     r.Contact,
		CreatedAt:   r.CreatedAt,
	}
}

func equipmentRecordFromRequest(id int64, req primary.EquipmentRequest) *secondary.EquipmentRecord {
	return &secondary.EquipmentRecord{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		PurchaseDate:    req.PurchaseDate,
		Condition:       req.Condition,
		LastMaintenance: req.LastMaintenance,
	}
}

func equipmentFromRecord(r *secondary.EquipmentRecord) *primary.Equipment {
	return &primary.Equipment{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		PurchaseDate:    r.PurchaseDate,
		Condition:       r.Condition,
		LastMaintenance: r.LastMaintenance,
		CreatedAt:       r.CreatedAt,
	}
}

func sensorRecordFromRequest(id int64, req primary.SensorRequest) *secondary.SensorRecord {
	return &secondary.SensorRecord{
		ID:            id,
		SensorType:    req.SensorType,
		Location:      req.Location,
		LastReading:   req.LastReading,
		LastReadingAt: req.LastReadingAt,
		Status:        req.Status,
	}
}

func sensorFromRecord(r *secondary.SensorRecord) *primary.Sensor {
	return &primary.Sensor{
		ID:            r.ID,
		SensorType:    r.SensorType,
		Location:      r.Location,
		LastReading:   r.LastReading,
		LastReadingAt: r.LastReadingAt,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

func spaceRecordFromRequest(id int64, req primary.SpaceRequest) *secondary.SpaceRecord {
	return &secondary.SpaceRecord{
		ID:             id,
		Name:           req.Name,
		Type:           req.Type,
		Capacity:       req.Capacity,
		GrassCondition: req.GrassCondition,
		Health:         req.Health,
	}
}

func spaceFromRecord(r *secondary.SpaceRecord) *primary.Space {
	return &primary.Space{
		ID:             r.ID,
		Name:           r.Name,
		Type:           r.Type,
		Capacity:       r.Capacity,
		GrassCondition: r.GrassCondition,
		Health:         r.Health,
		CreatedAt:      r.CreatedAt,
	}
}

// Ensure FarmServiceImpl implements the interface.
var _ primary.FarmService = (*FarmServiceImpl)(nil)
