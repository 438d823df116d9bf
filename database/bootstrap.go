package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"agrisense/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Zone{},
		&entities.ZoneActivity{},
		&entities.Feedback{},
		&entities.HomepageConfig{},
		&entities.KBArticle{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
