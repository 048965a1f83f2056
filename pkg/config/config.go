package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Model    ModelConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

// ModelConfig points at the exported classifier artifacts
// (model.json, label_encoders.json, target_encoder.json, feature_names.json).
type ModelConfig struct {
	Dir string
}

// Catalog sources: "csv" reads the supplier dataset from a flat file,
// "postgres" loads the supplier_offers table once at startup.
const (
	CatalogSourceCSV      = "csv"
	CatalogSourcePostgres = "postgres"
)

type CatalogConfig struct {
	Source  string
	CSVPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Dewatering Supplier Recommender"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Model: ModelConfig{
			Dir: getEnv("MODEL_DIR", "models"),
		},
		Catalog: CatalogConfig{
			Source:  getEnv("CATALOG_SOURCE", CatalogSourceCSV),
			CSVPath: getEnv("CATALOG_CSV_PATH", "data/dewatering_supplier_dataset.csv"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "dewater_recommender"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
	}

	switch cfg.Catalog.Source {
	case CatalogSourceCSV:
		if cfg.Catalog.CSVPath == "" {
			return nil, errors.New("missing catalog csv path")
		}
	case CatalogSourcePostgres:
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	if cfg.Model.Dir == "" {
		return nil, errors.New("missing model dir")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
