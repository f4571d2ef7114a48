package main

import (
	"flag"
	"log"

	"geoguia/internal/config"
	"geoguia/internal/logger"
	"geoguia/internal/seed"
)

func main() {
	withSeed := flag.Bool("seed", false, "load the Trujillo reference data after migrating")
	flag.Parse()

	// Initialize structured logging to file
	logger.Setup()

	// Connect and migrate the schema
	config.InitDB()

	// Triggers, views and row-level-security policies (postgres only)
	if err := config.ApplyPolicies(config.DB); err != nil {
		log.Fatalf("applying policies failed: %v", err)
	}

	if *withSeed {
		if err := seed.Load(config.DB); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("reference data seeded")
	}

	log.Println("✅ schema migrated")
}
