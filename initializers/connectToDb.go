package initializers

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectToDB opens the configured database. MySQL goes through gorm's own
// driver; Postgres is opened with lib/pq and handed to the gorm dialector.
func ConnectToDB(config *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var dialector gorm.Dialector
	switch config.DBDriver {
	case "postgres":
		sqlDB, err := sql.Open("postgres", config.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	default:
		dialector = mysql.Open(config.DSN())
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("connected to database", "driver", config.DBDriver, "host", config.DBHost, "name", config.DBName)
	return db, nil
}
