package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"insightx/internal/app"
	"insightx/internal/config"
	"insightx/internal/database/seeder"
)

func main() {
	jobs := flag.Int("jobs", 500, "number of demo jobs to create")
	users := flag.Int("users", 100, "number of synthetic users")
	perUser := flag.Int("interactions-per-user", 20, "interactions per synthetic user")
	seed := flag.Int64("seed", 1, "rng seed for reproducible data")
	skipInteractions := flag.Bool("skip-interactions", false, "seed jobs only")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	rng := rand.New(rand.NewSource(*seed))

	seeders := []seeder.Seeder{
		seeder.JobsSeeder{Count: *jobs, Rand: rng},
	}
	if !*skipInteractions {
		seeders = append(seeders, seeder.InteractionsSeeder{
			UserCount:           *users,
			InteractionsPerUser: *perUser,
			Rand:                rng,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := (seeder.Runner{Seeders: seeders}).Run(ctx, c.DB); err != nil {
		logger.Fatalf("seeding failed: %v", err)
	}

	logger.Printf("seeder | done jobs=%d users=%d", *jobs, *users)
}
