package main

import (
	"fmt"
	"os"

	"styledecor/config"
	"styledecor/database"
	"styledecor/database/seeders"

	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/migrate.go migrate - Run schema migrations and indexes")
		fmt.Println("  go run tools/migrate.go seed    - Seed the bootstrap admin and starter catalog")
		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		fmt.Printf("❌ Failed to connect to the database: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "migrate":
		// InitDB already ran migrations and indexes.
		fmt.Println("✅ Migration completed successfully!")

	case "seed":
		if err := seeders.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			fmt.Printf("❌ Failed to seed admin account: %v\n", err)
			os.Exit(1)
		}
		if err := seeders.SeedServices(db); err != nil {
			fmt.Printf("❌ Failed to seed service catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Seeding completed successfully!")

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		fmt.Println("Available commands: migrate, seed")
	}
}
