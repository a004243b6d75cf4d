// Command migrate applies or rolls back the versioned SQL migrations.
package main

import (
	"context"
	"flag"
	"log"

	"bloglist/internal/config"
	"bloglist/internal/database"
)

func main() {
	rollback := flag.Int("rollback", 0, "roll back the migration with this version instead of migrating up")
	status := flag.Bool("status", false, "list registered migrations and exit")
	flag.Parse()

	if *status {
		for _, m := range database.GetMigrations() {
			log.Printf("registered: %s", m.String())
		}
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if *rollback > 0 {
		if err := database.RollbackMigration(ctx, db, *rollback); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Printf("Rolled back migration %d", *rollback)
		return
	}

	if err := database.RunMigrations(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations applied")
}
