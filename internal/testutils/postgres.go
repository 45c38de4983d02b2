package testutils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgresForIntegration wires the global DB to a throwaway Postgres.
// Set TEST_DB_DSN to reuse an external instance instead of starting a
// container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal(err)
		}
		migrate(gormDB)
		db.InitWithGormDB(gormDB)
		return gormDB, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "workforce",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=workforce sslmode=disable", host, port.Port())

	var gormDB *gorm.DB
	for i := 0; i < 10; i++ {
		gormDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}

	migrate(gormDB)
	db.InitWithGormDB(gormDB)

	cleanup := func() {
		_ = pg.Terminate(ctx)
	}
	return gormDB, cleanup
}

func migrate(gormDB *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'manager', 'employee'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE user_status AS ENUM ('active', 'pending', 'disabled'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}
	for _, enum := range enums {
		if err := gormDB.Exec(enum).Error; err != nil {
			log.Fatal(err)
		}
	}

	if err := gormDB.AutoMigrate(
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
		log.Fatal(err)
	}
}
