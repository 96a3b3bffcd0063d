package main

import (
	"context"
	"flag"
	"log"
	"time"

	"quizera/internal/config"
	"quizera/internal/database"
	"quizera/internal/logger"

	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back every migration instead of applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	if !cfg.DatabaseEnabled() {
		l.Fatal("Database is not configured, set db.host")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if *down {
		err = database.RollbackMigrations(ctx, db.DB)
	} else {
		err = database.RunMigrations(ctx, db.DB)
	}
	if err != nil {
		l.Fatal("Migration failed", zap.Bool("down", *down), zap.Error(err))
	}
}
