// Command main loads portfolio content into the database.
package main

import (
	"context"
	"flag"
	"log"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/seed"
)

func main() {
	file := flag.String("file", "", "YAML portfolio file to load")
	fake := flag.Bool("fake", false, "Generate a demo portfolio with fake content")
	fakeSeed := flag.Int64("fake-seed", 0, "Random seed for -fake (0 picks one)")
	shouldClean := flag.Bool("clean", false, "Empty the portfolio tables before seeding")
	flag.Parse()

	if *file == "" && !*fake && !*shouldClean {
		log.Fatal("nothing to do: pass -file, -fake and/or -clean")
	}

	log.Println("🌱 Portfolio Seeder")
	log.Println("===================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close() }()

	ctx := context.Background()
	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
		log.Println("✓ portfolio tables cleared")
	}

	if *file != "" {
		sum, err := s.LoadFile(ctx, *file)
		if err != nil {
			log.Fatalf("❌ Seeding from %s failed after %s: %v", *file, sum, err)
		}
		log.Printf("✓ %s loaded: %s", *file, sum)
	}

	if *fake {
		opts := seed.DefaultDemoOptions
		opts.Seed = *fakeSeed
		sum, err := s.SeedDemo(ctx, opts)
		if err != nil {
			log.Fatalf("❌ Demo seeding failed after %s: %v", sum, err)
		}
		log.Printf("✓ demo portfolio generated: %s", sum)
	}

	log.Println("✨ All done!")
}
