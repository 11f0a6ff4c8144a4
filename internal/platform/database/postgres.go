package database

import (
	"database/sql"
	"time"

	"code_tutor/internal/platform/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/sirupsen/logrus"
)

var DB *sql.DB

func Connect() {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		logrus.Fatalf("Error opening database: %v", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = DB.Ping(); err != nil {
		logrus.Fatalf("Error connecting to database: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"host": config.AppConfig.DBHost,
		"db":   config.AppConfig.DBName,
	}).Info("Connected to PostgreSQL")
}

func Close() {
	if DB != nil {
		DB.Close()
		logrus.Info("Database connection closed")
	}
}
