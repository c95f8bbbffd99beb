package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database connection. PostgreSQL is used when
// POSTGRES_CONN_STR is set, otherwise a local SQLite file keeps the
// zero-config path working.
func InitDB(cfg *Config) (*gorm.DB, error) {
	if cfg.PostgresConnStr != "" {
		return initPostgres(cfg.PostgresConnStr)
	}
	return initSQLite(cfg.SQLiteFile)
}

func initPostgres(connStr string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to PostgreSQL!")
	return db, nil
}

func initSQLite(file string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(file), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	// SQLite leaves FK enforcement off unless asked; the cascade rules
	// in the schema depend on it.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	log.Printf("Using SQLite database at %s", file)
	return db, nil
}
