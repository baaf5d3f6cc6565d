package config

import (
	"log"
	"os"
	"strconv"
)

// Data source kinds selected by the DATA_SOURCE variable.
const (
	SourceCSV      = "csv"
	SourceSheet    = "sheet"
	SourceDatabase = "database"
)

type Config struct {
	HTTPPort      string
	DataSource    string
	CSVExportURL  string
	SheetsAPIKey  string
	SheetID       string
	SheetRange    string
	PostgresDSN   string
	PageSize      int
	PageNeighbors int
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DataSource:    getEnv("DATA_SOURCE", SourceCSV),
		CSVExportURL:  getEnv("CSV_EXPORT_URL", ""),
		SheetsAPIKey:  getEnv("SHEETS_API_KEY", ""),
		SheetID:       getEnv("SHEET_ID", ""),
		SheetRange:    getEnv("SHEET_RANGE", "Sheet1"),
		PostgresDSN:   getEnv("DATABASE_URL", ""),
		PageSize:      getInt("PAGE_SIZE", 10),
		PageNeighbors: getInt("PAGE_NEIGHBORS", 2),
	}

	if cfg.PostgresDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}
	switch cfg.DataSource {
	case SourceCSV:
		if cfg.CSVExportURL == "" {
			log.Fatal("CSV_EXPORT_URL is required when DATA_SOURCE=csv")
		}
	case SourceSheet:
		if cfg.SheetsAPIKey == "" || cfg.SheetID == "" {
			log.Fatal("SHEETS_API_KEY and SHEET_ID are required when DATA_SOURCE=sheet")
		}
	case SourceDatabase:
	default:
		log.Fatalf("unknown DATA_SOURCE %q", cfg.DataSource)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
