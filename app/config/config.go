package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultImageDir   = "public/img/products"
	DefaultOutputPath = "import.sql"
)

// Config holds the paths the generator reads from and writes to.
type Config struct {
	ImageDir   string
	OutputPath string
	// CatalogFile replaces the embedded catalog when set.
	CatalogFile string
	// SchemaPath enables writing the target DDL when set.
	SchemaPath string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ImageDir:    getEnv("IMPORTSQL_IMAGE_DIR", DefaultImageDir),
		OutputPath:  getEnv("IMPORTSQL_OUTPUT_PATH", DefaultOutputPath),
		CatalogFile: os.Getenv("IMPORTSQL_CATALOG_FILE"),
		SchemaPath:  os.Getenv("IMPORTSQL_SCHEMA_PATH"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
