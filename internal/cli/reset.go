package cli

import (
	"fmt"
	"time"

	"github.com/silverkaki/silverkaki/internal/db"
	"github.com/silverkaki/silverkaki/internal/models"
)

// RunResetDemoDataCommand wipes every collection and reseeds the demo
// profiles, catalog, and forum threads. Meant for kiosk deployments between
// demo sessions; it is destructive by design.
func RunResetDemoDataCommand(dbPath string, timezone string) error {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	tables := []any{
		&models.Registration{},
		&models.Feedback{},
		&models.Notification{},
		&models.ForumPost{},
		&models.User{},
		&models.Activity{},
	}
	for _, table := range tables {
		if err := database.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clear table: %w", err)
		}
	}

	if err := db.SeedDemoData(database, time.Now().In(location), location); err != nil {
		return fmt.Errorf("reseed demo data: %w", err)
	}

	fmt.Println("✅ Demo data reset complete")
	fmt.Println("Sign in with Uncle Tan, Auntie Mary, or Uncle Lim to explore.")

	return nil
}
