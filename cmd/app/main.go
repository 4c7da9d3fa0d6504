package main

import (
	"flag"
	"log"
	"os"

	"snackstock-api/cmd/config"
	migration "snackstock-api/cmd/database/migrate"
	"snackstock-api/cmd/database/seeder"
	"snackstock-api/internal/utils"

	"gorm.io/gorm"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations before starting")
	seed := flag.Bool("seed", false, "load demo data before starting")
	flag.Parse()

	utils.LoadConfig()

	var db *gorm.DB
	if utils.GetConfig("DB_DRIVER") != "memory" {
		var err error
		db, err = config.ConnectDB()
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}

		if *migrate {
			if err := migration.Migrate(db); err != nil {
				log.Fatalf("failed to migrate database: %v", err)
			}
		}
		if *seed {
			if err := seeder.Seed(db); err != nil {
				log.Fatalf("failed to seed database: %v", err)
			}
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
