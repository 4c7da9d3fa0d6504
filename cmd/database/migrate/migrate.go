package migration

import (
	"fmt"
	"log"

	"snackstock-api/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Article{}); err != nil {
		log.Fatalf("Error migrating article database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ConsumptionRecord{}); err != nil {
		log.Fatalf("Error migrating consumption history database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
