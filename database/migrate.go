package database

import (
	"kasambahay_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates the uuid extension and auto-migrates every model.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.EmployeeProfile{},
		&models.Document{},
		&models.Reference{},
		&models.EmployerProfile{},
		&models.Subscription{},
		&models.BillingHistory{},
		&models.Chat{},
		&models.ChatMessage{},
		&models.Interview{},
		&models.SavedSearch{},
	)
}
