package app

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/example/croft/internal/ports/primary"
)

func newTestFarmService() (*FarmServiceImpl, *mockSpaceRepository) {
	spaces := newMockSpaceRepository()
	svc := NewFarmService(
		newMockWorkerRepository(),
		newMockEquipmentRepository(),
		newMockSensorRepository(),
		spaces,
		zap.NewNop(),
	)
	return svc, spaces
}

func TestAddWorker(t *testing.T) {
	svc, _ := newTestFarmService()

	worker, err := svc.AddWorker(context.Background(), primary.WorkerRequest{
		Name:    "Ravi",
		Role:    "herder",
		Contact: "ravi@example.com",
	})
	if err != nil {
		t.Fatalf("AddWorker failed: %v", err)
	}
	if worker.ID == 0 || worker.Name != "Ravi" {
		t.Errorf("unexpected worker: %+v", worker)
	}
	if worker.HoursWorked != 0 || worker.Leaves != 0 {
		t.Errorf("expected zero hours and leaves by default, got %+v", worker)
	}
}

func TestAddWorkerRejectsMissingName(t *testing.T) {
	svc, _ := newTestFarmService()

	if _, err := svc.AddWorker(context.Background(), primary.WorkerRequest{Role: "vet"}); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestAddWorkerRejectsNegativeHours(t *testing.T) {
	svc, _ := newTestFarmService()

	_, err := svc.AddWorker(context.Background(), primary.WorkerRequest{
		Name:        "Ravi",
		HoursWorked: -5,
	})
	if err == nil {
		t.Fatal("expected error for negative hours")
	}
}

func TestUpdateWorker(t *testing.T) {
	svc, _ := newTestFarmService()
	ctx := context.Background()

	created, err := svc.AddWorker(ctx, primary.WorkerRequest{Name: "Ravi"})
	if err != nil {
		t.Fatalf("AddWorker failed: %v", err)
	}

	updated, err := svc.UpdateWorker(ctx, created.ID, primary.WorkerRequest{
		Name:        "Ravi",
		HoursWorked: 160,
		Leaves:      2,
	})
	if err != nil {
		t.Fatalf("UpdateWorker failed: %v", err)
	}
	if updated.HoursWorked != 160 || updated.Leaves != 2 {
		t.Errorf("expected updated fields, got %+v", updated)
	}
}

func TestDeleteWorker(t *testing.T) {
	svc, _ := newTestFarmService()
	ctx := context.Background()

	created, err := svc.AddWorker(ctx, primary.WorkerRequest{Name: "Ravi"})
	if err != nil {
		t.Fatalf("AddWorker failed: %v", err)
	}
	if err := svc.DeleteWorker(ctx, created.ID); err != nil {
		t.Fatalf("DeleteWorker failed: %v", err)
	}
	if err := svc.DeleteWorker(ctx, created.ID); err == nil {
		t.Error("expected error deleting twice")
	}
}

func TestEquipmentLifecycle(t *testing.T) {
	svc, _ := newTestFarmService()
	ctx := context.Background()

	created, err := svc.AddEquipment(ctx, primary.EquipmentRequest{
		Name:         "Milking machine",
		Condition:    "good",
		PurchaseDate: "2024-03-01",
	})
	if err != nil {
		t.Fatalf("AddEquipment failed: %v", err)
	}

	updated, err := svc.UpdateEquipment(ctx, created.ID, primary.EquipmentRequest{
		Name:            "Milking machine",
		Condition:       "needs service",
		PurchaseDate:    "2024-03-01",
		LastMaintenance: "2025-06-15",
	})
	if err != nil {
		t.Fatalf("UpdateEquipment failed: %v", err)
	}
	if updated.Condition != "needs service" || updated.LastMaintenance != "2025-06-15" {
		t.Errorf("expected updated fields, got %+v", updated)
	}

	listed, err := svc.ListEquipment(ctx)
	if err != nil {
		t.Fatalf("ListEquipment failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 equipment, got %d", len(listed))
	}

	if err := svc.DeleteEquipment(ctx, created.ID); err != nil {
		t.Fatalf("DeleteEquipment failed: %v", err)
	}
}

func TestAddEquipmentRejectsMissingName(t *testing.T) {
	svc, _ := newTestFarmService()

	if _, err := svc.AddEquipment(context.Background(), primary.EquipmentRequest{Condition: "good"}); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestSensorLifecycle(t *testing.T) {
	svc, _ := newTestFarmService()
	ctx := context.Background()

	created, err := svc.AddSensor(ctx, primary.SensorRequest{
		SensorType: "temperature",
		Location:   "barn A",
		Status:     "active",
	})
	if err != nil {
		t.Fatalf("AddSensor failed: %v", err)
	}
	if created.LastReadingAt != "" {
		t.Errorf("expected no reading timestamp yet, got %q", created.LastReadingAt)
	}

	updated, err := svc.UpdateSensor(ctx, created.ID, primary.SensorRequest{
		SensorType:    "temperature",
		Location:      "barn A",
		LastReading:   21.4,
		LastReadingAt: "2025-08-01T06:00:00Z",
		Status:        "active",
	})
	if err != nil {
		t.Fatalf("UpdateSensor failed: %v", err)
	}
	if updated.LastReading != 21.4 || updated.LastReadingAt == "" {
		t.Errorf("expected reading to be recorded, got %+v", updated)
	}

	if err := svc.DeleteSensor(ctx, created.ID); err != nil {
		t.Fatalf("DeleteSensor failed: %v", err)
	}
}

func TestAddSensorRejectsMissingType(t *testing.T) {
	svc, _ := newTestFarmService()

	if _, err := svc.AddSensor(context.Background(), primary.SensorRequest{Location: "barn A"}); err == nil {
		t.Fatal("expected error for missing sensor type")
	}
}

func TestAddSpace(t *testing.T) {
	svc, _ := newTestFarmService()

	space, err := svc.AddSpace(context.Background(), primary.SpaceRequest{
		Name:     "North paddock",
		Type:     "grazing_field",
		Capacity: 20,
	})
	if err != nil {
		t.Fatalf("AddSpace failed: %v", err)
	}
	if space.Type != "grazing_field" || space.Capacity != 20 {
		t.Errorf("unexpected space: %+v", space)
	}
}

func TestAddSpaceRejectsInvalidType(t *testing.T) {
	svc, spaces := newTestFarmService()

	_, err := svc.AddSpace(context.Background(), primary.SpaceRequest{
		Name: "Barn",
		Type: "barn",
	})
	if err == nil {
		t.Fatal("expected error for invalid space type")
	}
	if len(spaces.spaces) != 0 {
		t.Error("expected no space to be persisted")
	}
}

func TestUpdateSpaceRejectsInvalidType(t *testing.T) {
	svc, _ := newTestFarmService()
	ctx := context.Background()

	created, err := svc.AddSpace(ctx, primary.SpaceRequest{
		Name: "Main enclosure",
		Type: "enclosure",
	})
	if err != nil {
		t.Fatalf("AddSpace failed: %v", err)
	}

	_, err = svc.UpdateSpace(ctx, created.ID, primary.SpaceRequest{
		Name: "Main enclosure",
		Type: "pen",
	})
	if err == nil {
		t.Fatal("expected error for invalid space type on update")
	}
}

func TestSpaceLifecycle(t *testing.T) {
	svc, _ := newTestFarmService()
	ctx := context.Background()

	created, err := svc.AddSpace(ctx, primary.SpaceRequest{
		Name:           "South field",
		Type:           "grazing_field",
		Capacity:       15,
		GrassCondition: "lush",
	})
	if err != nil {
		t.Fatalf("AddSpace failed: %v", err)
	}

	updated, err := svc.UpdateSpace(ctx, created.ID, primary.SpaceRequest{
		Name:           "South field",
		Type:           "grazing_field",
		Capacity:       15,
		GrassCondition: "overgrazed",
		Health:         "fair",
	})
	if err != nil {
		t.Fatalf("UpdateSpace failed: %v", err)
	}
	if updated.GrassCondition != "overgrazed" || updated.Health != "fair" {
		t.Errorf("expected updated fields, got %+v", updated)
	}

	listed, err := svc.ListSpaces(ctx)
	if err != nil {
		t.Fatalf("ListSpaces failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 space, got %d", len(listed))
	}

	if err := svc.DeleteSpace(ctx, created.ID); err != nil {
		t.Fatalf("DeleteSpace failed: %v", err)
	}
}
