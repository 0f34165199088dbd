package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/croft/internal/adapters/sqlite"
	"github.com/example/croft/internal/ports/secondary"
)

func TestWorkerRepository_CreateAndDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewWorkerRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.WorkerRecord{
		Name:    "Asha Patel",
		Role:    "herd manager",
		Contact: "asha@example.com",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.HoursWorked != 0 || retrieved.Leaves != 0 {
		t.Errorf("expected zero defaults, got hours=%d leaves=%d", retrieved.HoursWorked, retrieved.Leaves)
	}
	if retrieved.CreatedAt == "" {
		t.Error("expected created_at to be set")
	}
}

func TestWorkerRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewWorkerRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.WorkerRecord{Name: "Ravi Kumar"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = repo.Update(ctx, &secondary.WorkerRecord{
		ID:          id,
		Name:        "Ravi Kumar",
		HoursWorked: 152,
		Leaves:      3,
		Role:        "milker",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.HoursWorked != 152 || retrieved.Role != "milker" {
		t.Errorf("update not applied: %+v", retrieved)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, id); err == nil {
		t.Error("expected error for deleted worker")
	}
	if err := repo.Delete(ctx, id); err == nil {
		t.Error("expected error deleting twice")
	}
}

func TestEquipmentRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewEquipmentRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.EquipmentRecord{
		Name:         "Milking machine",
		Description:  "Twin-bucket portable milker",
		PurchaseDate: "2023-04-18",
		Condition:    "good",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.PurchaseDate != "2023-04-18" {
		t.Errorf("expected purchase date '2023-04-18', got '%s'", retrieved.PurchaseDate)
	}
	if retrieved.LastMaintenance != "" {
		t.Errorf("expected empty last_maintenance, got '%s'", retrieved.LastMaintenance)
	}

	retrieved.LastMaintenance = "2025-06-01"
	retrieved.Condition = "worn"
	if err := repo.Update(ctx, retrieved); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.LastMaintenance != "2025-06-01" || updated.Condition != "worn" {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestEquipmentRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewEquipmentRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Feed mixer", "Hoof trimmer"} {
		if _, err := repo.Create(ctx, &secondary.EquipmentRecord{Name: name}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Feed mixer" {
		t.Errorf("unexpected order: %s first", items[0].Name)
	}
}

func TestSensorRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSensorRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.SensorRecord{
		SensorType: "temperature",
		Location:   "barn A",
		Status:     "online",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.LastReadingAt != "" {
		t.Errorf("expected no reading timestamp yet, got '%s'", retrieved.LastReadingAt)
	}

	// Record a reading
	retrieved.LastReading = 21.4
	retrieved.LastReadingAt = "2025-08-20 06:00:00"
	if err := repo.Update(ctx, retrieved); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.LastReading != 21.4 {
		t.Errorf("expected reading 21.4, got %v", updated.LastReading)
	}
	if updated.LastReadingAt == "" {
		t.Error("expected reading timestamp to be set")
	}
}

func TestSensorRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSensorRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.SensorRecord{SensorType: "humidity"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, id); err == nil {
		t.Error("expected error deleting twice")
	}
}

func TestSpaceRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSpaceRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.SpaceRecord{
		Name:           "River paddock",
		Type:           "grazing_field",
		Capacity:       40,
		GrassCondition: "lush",
		Health:         "good",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Type != "grazing_field" || retrieved.Capacity != 40 {
		t.Errorf("unexpected space: %+v", retrieved)
	}
}

func TestSpaceRepository_Create_InvalidType(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSpaceRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &secondary.SpaceRecord{
		Name: "Barn",
		Type: "barn",
	})
	if err == nil {
		t.Error("expected CHECK constraint error for invalid space type")
	}
}

func TestSpaceRepository_UpdateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSpaceRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.SpaceRecord{Name: "North enclosure", Type: "enclosure", Capacity: 25})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := repo.Create(ctx, &secondary.SpaceRecord{Name: "Quarantine pen", Type: "other", Capacity: 4}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = repo.Update(ctx, &secondary.SpaceRecord{
		ID:       id,
		Name:     "North enclosure",
		Type:     "enclosure",
		Capacity: 30,
		Health:   "clean",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	spaces, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(spaces) != 2 {
		t.Fatalf("expected 2 spaces, got %d", len(spaces))
	}
	if spaces[0].Capacity != 30 {
		t.Errorf("expected updated capacity 30, got %d", spaces[0].Capacity)
	}

	// Updates cannot smuggle in an invalid type either
	err = repo.Update(ctx, &secondary.SpaceRecord{ID: id, Name: "North enclosure", Type: "shed"})
	if err == nil {
		t.Error("expected CHECK constraint error on update")
	}
}
