package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/croft/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the croft environment and database",
		Long: `Environment health check for croft.

Validates:
- Database path resolution (CROFT_DB_PATH or ~/.croft/croft.db)
- Database file existence
- Schema version against the known migration chain
- Foreign key enforcement

Examples:
  croft doctor              # Run full health check
  croft doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDBPath(),
				checkDBFile(),
				checkSchemaVersion(),
				checkForeignKeys(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'croft init' to initialize the database.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkDBPath validates the database path can be resolved
func checkDBPath() CheckResult {
	path, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "DB path", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}
	if os.Getenv("CROFT_DB_PATH") != "" {
		return CheckResult{Name: "DB path", Status: "⚠", Details: fmt.Sprintf("  CROFT_DB_PATH override in effect: %s", path)}
	}
	return CheckResult{Name: "DB path", Status: "✓"}
}

// checkDBFile validates the database file exists
func checkDBFile() CheckResult {
	path, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "DB file", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{Name: "DB file", Status: "✗", Details: fmt.Sprintf("  %s does not exist - run 'croft init'", path)}
	}
	return CheckResult{Name: "DB file", Status: "✓"}
}

// checkSchemaVersion validates the recorded version matches the migration chain
func checkSchemaVersion() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Schema version", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}

	var version int
	if err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version); err != nil {
		return CheckResult{Name: "Schema version", Status: "✗", Details: fmt.Sprintf("  cannot read schema_version: %v", err)}
	}

	latest := db.LatestMigrationVersion()
	if version < latest {
		return CheckResult{
			Name:    "Schema version",
			Status:  "✗",
			Details: fmt.Sprintf("  database at version %d, latest is %d - run 'croft init'", version, latest),
		}
	}
	return CheckResult{Name: "Schema version", Status: "✓"}
}

// checkForeignKeys validates the connection enforces foreign keys
func checkForeignKeys() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Foreign keys", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}

	var enabled int
	if err := database.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return CheckResult{Name: "Foreign keys", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}
	if enabled != 1 {
		return CheckResult{Name: "Foreign keys", Status: "✗", Details: "  PRAGMA foreign_keys is off - cascade deletes will not fire"}
	}
	return CheckResult{Name: "Foreign keys", Status: "✓"}
}
