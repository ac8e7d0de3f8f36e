package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/config"
	"github.com/brimiq/Late-Show-CodeChallenge/internal/database"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML or JSON config file")
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !*yes {
		fmt.Println("Seeding replaces all episodes, guests and appearances.")
		fmt.Println("Press Enter to continue or Ctrl+C to cancel...")
		fmt.Scanln()
	}

	if err := database.Initialize(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.Seed(database.GetDB(), config.Get().Database.GuestCSVPath); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println("Database seeding completed successfully.")
}
