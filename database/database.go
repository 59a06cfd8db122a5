package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/b4dow/uptask-backend/config"
	"github.com/b4dow/uptask-backend/models"
)

// Connect opens the Postgres connection and runs migrations. A failure
// here is fatal to the process, so the caller is expected to exit.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection successfully opened.")

	err = db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Project{},
		&models.Task{},
		&models.TaskStatusChange{},
	)
	if err != nil {
		return nil, err
	}
	log.Println("Database migrated successfully.")

	return db, nil
}
