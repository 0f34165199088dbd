package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with development fixtures.
// Uses realistic herd data that exercises the association tables.
func SeedFixtures(database *sql.DB) error {
	// Vaccines
	vaccines := []string{"Rabies", "CDT", "Clostridium", "FootAndMouth"}
	for _, v := range vaccines {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO vaccines (name) VALUES (?)", v,
		); err != nil {
			return fmt.Errorf("seed vaccines: %w", err)
		}
	}

	// Diseases
	diseases := []string{"FootRot", "Mastitis", "Parasites", "Pneumonia"}
	for _, d := range diseases {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO diseases (name) VALUES (?)", d,
		); err != nil {
			return fmt.Errorf("seed diseases: %w", err)
		}
	}

	// Goats across the common Indian breeds
	goats := []struct {
		breed, name, gender          string
		offspring                    int
		cost, weight, price          float64
		diet, lastBred, healthStatus string
	}{
		{"Beetal", "Daisy", "Female", 2, 180.0, 55.5, 230.0, "Hay", "2025-03-12", "healthy"},
		{"Jamunapari", "Hercules", "Male", 0, 220.0, 82.0, 310.0, "Mixed", "", "healthy"},
		{"Barbari", "Clover", "Female", 3, 140.0, 42.3, 175.0, "Pasture", "2024-11-02", "healthy"},
		{"Sirohi", "Biscuit", "Male", 0, 160.0, 61.8, 205.0, "Hay", "", "recovering"},
		{"Osmanabadi", "Pepper", "Female", 1, 150.0, 48.0, 190.0, "Mixed", "2025-06-20", "healthy"},
		{"BlackBengal", "Midnight", "Female", 4, 120.0, 38.5, 168.0, "Pasture", "2025-01-15", "healthy"},
		{"Kutchi", "Storm", "Male", 0, 175.0, 70.1, 240.0, "Hay", "", "healthy"},
		{"Kaghani", "Willow", "Female", 2, 190.0, 52.7, 250.0, "Mixed", "2024-09-30", "recovering"},
		{"Chegu", "Frost", "Male", 0, 210.0, 66.4, 285.0, "Pasture", "", "healthy"},
		{"Jakhrana", "Hazel", "Female", 1, 165.0, 50.9, 215.0, "Hay", "2025-05-08", "healthy"},
	}
	for _, g := range goats {
		var lastBred sql.NullString
		if g.lastBred != "" {
			lastBred = sql.NullString{String: g.lastBred, Valid: true}
		}
		if _, err := database.Exec(
			`INSERT INTO goats (breed, name, gender, offspring, cost, weight, current_price, diet, last_bred, health_status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.breed, g.name, g.gender, g.offspring, g.cost, g.weight, g.price, g.diet, lastBred, g.healthStatus,
		); err != nil {
			return fmt.Errorf("seed goats: %w", err)
		}
	}

	// Vaccination links: spread the four vaccines across the herd
	vaccinations := []struct {
		goat, vaccine int64
	}{
		{1, 1}, {1, 2}, {2, 2}, {3, 1}, {3, 3}, {4, 4},
		{5, 2}, {6, 1}, {6, 4}, {7, 3}, {8, 2}, {9, 1}, {10, 3},
	}
	for _, link := range vaccinations {
		if _, err := database.Exec(
			"INSERT INTO goat_vaccines (goat_id, vaccine_id) VALUES (?, ?)",
			link.goat, link.vaccine,
		); err != nil {
			return fmt.Errorf("seed goat_vaccines: %w", err)
		}
	}

	// Disease history for the recovering animals
	diagnoses := []struct {
		goat, disease int64
	}{
		{4, 1}, {8, 4},
	}
	for _, link := range diagnoses {
		if _, err := database.Exec(
			"INSERT INTO goat_diseases (goat_id, disease_id) VALUES (?, ?)",
			link.goat, link.disease,
		); err != nil {
			return fmt.Errorf("seed goat_diseases: %w", err)
		}
	}

	// Workers
	workers := []struct {
		name          string
		hours, leaves int
		role, contact string
	}{
		{"Asha Patel", 160, 2, "herd manager", "asha@example.com"},
		{"Ravi Kumar", 140, 0, "milker", "ravi@example.com"},
		{"Meena Joshi", 120, 5, "veterinary assistant", "meena@example.com"},
	}
	for _, w := range workers {
		if _, err := database.Exec(
			"INSERT INTO workers (name, hours_worked, leaves, role, contact) VALUES (?, ?, ?, ?, ?)",
			w.name, w.hours, w.leaves, w.role, w.contact,
		); err != nil {
			return fmt.Errorf("seed workers: %w", err)
		}
	}

	// Equipment
	equipment := []struct {
		name, description, purchased, condition, maintained string
	}{
		{"Milking machine", "Twin-bucket portable milker", "2023-04-18", "good", "2025-06-01"},
		{"Feed mixer", "500L vertical mixer", "2021-09-02", "worn", "2025-02-14"},
		{"Hoof trimmer", "Pneumatic trimming crush", "2024-01-25", "good", "2025-07-19"},
	}
	for _, e := range equipment {
		if _, err := database.Exec(
			"INSERT INTO equipment (name, description, purchase_date, condition, last_maintenance) VALUES (?, ?, ?, ?, ?)",
			e.name, e.description, e.purchased, e.condition, e.maintained,
		); err != nil {
			return fmt.Errorf("seed equipment: %w", err)
		}
	}

	// Sensors
	sensors := []struct {
		sensorType, location string
		reading              float64
		readAt, status       string
	}{
		{"temperature", "barn A", 21.4, "2025-08-20 06:00:00", "online"},
		{"humidity", "barn A", 63.0, "2025-08-20 06:00:00", "online"},
		{"water_level", "trough 3", 0.42, "2025-08-19 18:30:00", "offline"},
	}
	for _, s := range sensors {
		if _, err := database.Exec(
			"INSERT INTO sensors (sensor_type, location, last_reading, last_reading_at, status) VALUES (?, ?, ?, ?, ?)",
			s.sensorType, s.location, s.reading, s.readAt, s.status,
		); err != nil {
			return fmt.Errorf("seed sensors: %w", err)
		}
	}

	// Spaces
	spaces := []struct {
		name, spaceType        string
		capacity               int
		grassCondition, health string
	}{
		{"North enclosure", "enclosure", 25, "n/a", "clean"},
		{"River paddock", "grazing_field", 40, "lush", "good"},
		{"Quarantine pen", "other", 4, "n/a", "sanitized"},
	}
	for _, s := range spaces {
		if _, err := database.Exec(
			"INSERT INTO spaces (name, type, capacity, grass_condition, health) VALUES (?, ?, ?, ?, ?)",
			s.name, s.spaceType, s.capacity, s.grassCondition, s.health,
		); err != nil {
			return fmt.Errorf("seed spaces: %w", err)
		}
	}

	return nil
}
