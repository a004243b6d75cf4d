// Command seed populates the database with development data: the canonical
// fixture, an optional yaml fixture file, and optionally n random users with
// blogs.
package main

import (
	"context"
	"flag"
	"log"

	"bloglist/internal/auth"
	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/repository"
	"bloglist/internal/seed"
)

func main() {
	fixturePath := flag.String("fixture", "", "path to a yaml fixture file (defaults to the built-in fixture)")
	random := flag.Int("random", 0, "number of random users to generate in addition to the fixture")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	fixture := seed.DefaultFixture()
	if *fixturePath != "" {
		fixture, err = seed.LoadFixture(*fixturePath)
		if err != nil {
			log.Fatalf("Failed to load fixture: %v", err)
		}
	}

	users := repository.NewUserRepository(db)
	blogs := repository.NewBlogRepository(db)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	ctx := context.Background()

	if err := seed.Apply(ctx, users, blogs, hasher, fixture); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	if *random > 0 {
		if err := seed.Apply(ctx, users, blogs, hasher, seed.RandomFixture(*random)); err != nil {
			log.Fatalf("Random seeding failed: %v", err)
		}
	}

	log.Printf("Seeded %d user(s) and %d blog(s)", len(fixture.Users), len(fixture.Blogs))
}
