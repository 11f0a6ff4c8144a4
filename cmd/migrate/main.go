package main

import (
	"fmt"
	"os"

	"code_tutor/internal/platform/config"
	"code_tutor/internal/platform/database"
	"code_tutor/internal/platform/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s up|down\n", os.Args[0])
		os.Exit(2)
	}

	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := database.Migrate(cfg.MigrationURL(), os.Args[1]); err != nil {
		logrus.Fatalf("Migration %s failed: %v", os.Args[1], err)
	}
}
