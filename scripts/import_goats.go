// +build ignore

package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// Row layout expected in the CSV:
// name,breed,gender,offspring,cost,weight
type goatRow struct {
	Name      string
	Breed     string
	Gender    string
	Offspring int
	Cost      float64
	Weight    float64
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview import without executing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/import_goats.go [--dry-run] <goats.csv>")
		os.Exit(1)
	}

	rows, err := readCSV(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		os.Exit(1)
	}

	if len(rows) == 0 {
		fmt.Println("No goats found in CSV")
		return
	}

	fmt.Printf("Found %d goat(s) to import:\n\n", len(rows))
	for _, row := range rows {
		fmt.Printf("  %s (%s, %s) offspring=%d cost=%.2f weight=%.1f\n",
			row.Name, row.Breed, row.Gender, row.Offspring, row.Cost, row.Weight)
	}

	if *dryRun {
		fmt.Println("\nDry run - nothing imported")
		return
	}

	dbPath := os.Getenv("CROFT_DB_PATH")
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
			os.Exit(1)
		}
		dbPath = filepath.Join(homeDir, ".croft", "croft.db")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	imported := 0
	for _, row := range rows {
		_, err := db.Exec(
			"INSERT INTO goats (breed, name, gender, offspring, cost, weight) VALUES (?, ?, ?, ?, ?, ?)",
			row.Breed, row.Name, row.Gender, row.Offspring, row.Cost, row.Weight,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", row.Name, err)
			continue
		}
		imported++
	}

	fmt.Printf("\nImported %d/%d goat(s)\n", imported, len(rows))
}

func readCSV(path string) ([]goatRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var rows []goatRow
	for i, record := range records {
		if i == 0 && record[0] == "name" {
			continue // header
		}
		if len(record) < 6 {
			return nil, fmt.Errorf("line %d: expected 6 columns, got %d", i+1, len(record))
		}
		offspring, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad offspring count: %w", i+1, err)
		}
		cost, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad cost: %w", i+1, err)
		}
		weight, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad weight: %w", i+1, err)
		}
		rows = append(rows, goatRow{
			Name:      record[0],
			Breed:     record[1],
			Gender:    record[2],
			Offspring: offspring,
			Cost:      cost,
			Weight:    weight,
		})
	}
	return rows, nil
}
