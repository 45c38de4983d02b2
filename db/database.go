package db

import (
	"fmt"
	"log"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'manager', 'employee'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE user_status AS ENUM ('active', 'pending', 'disabled'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	createEnums()

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.TimesheetEntry{},
		&models.ExpenseClaim{},
		&models.Invoice{},
		&models.InvoiceLineItem{},
		&models.OnboardingInvite{},
		&models.TimerState{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB injects an existing connection, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
