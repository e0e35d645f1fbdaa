package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const postgresConnectAttempts = 10

// ConnectPostgres opens a gorm connection, retrying while the database starts up.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	var lastErr error
	for i := range postgresConnectAttempts {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			log.Printf("[storage][postgres] connected attempt=%d", i+1)
			return db, nil
		}
		lastErr = err
		log.Printf("[storage][postgres] connection attempt %d failed: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connect postgres: %w", lastErr)
}
