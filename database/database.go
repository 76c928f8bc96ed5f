package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/config"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/logger"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/models"
)

var DB *gorm.DB

// Connect opens the Postgres database and runs the schema migration.
// If the DB is not reachable the process exits immediately (early fail).
func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := migrate(db); err != nil {
		logger.Log.Fatal().Err(err).Msg("auto migrate failed")
	}
	DB = db
}

// OpenTest opens a private in-memory SQLite database with the same schema.
// Used by the test suites; never in a deployed server.
func OpenTest() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}
	// A second pooled connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := migrate(db); err != nil {
		panic(err)
	}
	return db
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Note{},
		&models.Room{},
	)
}
