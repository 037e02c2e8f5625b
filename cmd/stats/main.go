package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/alexivanou/skytrip-api/internal/config"
	"github.com/alexivanou/skytrip-api/internal/database"
	"github.com/alexivanou/skytrip-api/internal/stats"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	logger.Info("Collecting statistics...", zap.String("db_type", string(cfg.DB.Type)))

	collector := stats.NewCollector(db, cfg.DB)

	statistics, err := collector.Collect(context.Background())
	if err != nil {
		logger.Fatal("Failed to collect statistics", zap.Error(err))
	}

	switch os.Getenv("OUTPUT_FORMAT") {
	case "text", "human":
		fmt.Printf("Database type:   %s\n", statistics.Database.Type)
		fmt.Printf("KV entries:      %d\n", statistics.Database.KVEntries)
		fmt.Printf("Database size:   %d bytes\n", statistics.Database.SizeBytes)
		fmt.Printf("Heap in use:     %d bytes\n", statistics.Memory.HeapInuse)
		fmt.Printf("Goroutines:      %d\n", statistics.Runtime.NumGoroutines)
	default:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(statistics); err != nil {
			logger.Fatal("Failed to encode statistics", zap.Error(err))
		}
	}
}
