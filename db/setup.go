package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hoangdieu/wedding-invitation/internal/models"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return sqlDB.Ping()
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Intro{},
		&models.DateOfOrganization{},
		&models.SessionImage{},
		&models.HeaderSection{},
		&models.FamilySection{},
		&models.InviteSection{},
		&models.FooterSection{},
		&models.AlbumSession{},
		&models.AlbumImage{},
		&models.Guest{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
