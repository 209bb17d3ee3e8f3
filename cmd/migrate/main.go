package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/glassshop/backend/internal/infrastructure/config"
	"github.com/glassshop/backend/internal/infrastructure/logger"
	"github.com/glassshop/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(logLevel, "console", "stdout")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	switch command {
	case "up":
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Schema migration failed", zap.Error(err))
		}
		log.Info("Schema migrated successfully",
			zap.String("database", cfg.Database.DBName),
		)

	case "ping":
		if err := db.Ping(); err != nil {
			log.Fatal("Database unreachable", zap.Error(err))
		}
		log.Info("Database connection OK",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.DBName),
		)

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Glass Shop Database Migration Tool

Usage:
  migrate [flags] <command>

Commands:
  up       Create or update the database schema for all models
  ping     Verify database connectivity

Flags:
  -log-level string     Log level: debug, info, warn, error (default: info)

Environment Variables:
  GLASSSHOP_DATABASE_HOST, GLASSSHOP_DATABASE_PORT, GLASSSHOP_DATABASE_USER,
  GLASSSHOP_DATABASE_PASSWORD, GLASSSHOP_DATABASE_DBNAME, GLASSSHOP_DATABASE_SSLMODE`)
}
