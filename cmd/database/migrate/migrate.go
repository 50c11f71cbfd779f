package migration

import (
	"fmt"
	"log"

	"savor-oasis-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.FoodListing{}); err != nil {
		log.Printf("Error migrating food listing table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PurchaseRecord{}); err != nil {
		log.Printf("Error migrating purchase record table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GalleryPhoto{}); err != nil {
		log.Printf("Error migrating gallery photo table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
