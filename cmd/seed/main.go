package main

import (
	"context"
	"log"

	"github.com/FarazAhsan11/candidate-management/config"
	"github.com/FarazAhsan11/candidate-management/internal/repository/postgres"
	"github.com/FarazAhsan11/candidate-management/internal/seed"
	"github.com/FarazAhsan11/candidate-management/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	repo := postgres.NewCandidateRepository(dbPool)
	if err := seed.Candidates(context.Background(), repo); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
