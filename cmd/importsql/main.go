// Command importsql writes the catalog seed script (categories, units and
// products with their images) for the Catalog service database.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/onieto/huertohogar-importsql/app/config"
	"github.com/onieto/huertohogar-importsql/app/images"
	"github.com/onieto/huertohogar-importsql/app/importsql"
	"github.com/onieto/huertohogar-importsql/models"
)

func main() {
	// Load configuration
	cfg := config.Load()
	setupLogging()

	if err := run(cfg); err != nil {
		slog.Error("failed to generate seed script", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	repo, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	builder, err := importsql.NewBuilder(repo, images.NewLoader(cfg.ImageDir))
	if err != nil {
		return err
	}

	script, err := builder.Build()
	if err != nil {
		return err
	}
	slog.Debug("seed script built", "products", script.Products, "images", cfg.ImageDir)

	if err := importsql.WriteFile(cfg.OutputPath, script.SQL); err != nil {
		return err
	}
	slog.Info("seed script written", "path", cfg.OutputPath, "bytes", len(script.SQL))

	if cfg.SchemaPath != "" {
		ddl, err := importsql.BuildSchema()
		if err != nil {
			return err
		}
		if err := importsql.WriteFile(cfg.SchemaPath, ddl); err != nil {
			return err
		}
		slog.Info("schema written", "path", cfg.SchemaPath)
	}

	return importsql.Report(os.Stdout, cfg.OutputPath, script)
}

func loadCatalog(path string) (*models.CatalogRepository, error) {
	if path == "" {
		return models.DefaultCatalogRepository()
	}
	return models.LoadCatalogRepository(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
