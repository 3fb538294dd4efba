package models

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	// ErrCategoryNotFound is returned when a category name is not in the catalog.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrUnitNotFound is returned when a unit name is not in the catalog.
	ErrUnitNotFound = errors.New("unit not found")

	ErrDuplicateCategory = errors.New("duplicate category")
	ErrDuplicateUnit     = errors.New("duplicate unit")
)

// Catalog is the declarative seed data. Slice order is emission order.
type Catalog struct {
	Categories []Category      `yaml:"categories"`
	Units      []Unit          `yaml:"units"`
	Products   []ProductRecord `yaml:"products"`
}

type CatalogRepository struct {
	catalog Catalog
}

// NewCatalogRepository decodes the catalog read from r.
func NewCatalogRepository(r io.Reader) (*CatalogRepository, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.checkNames(); err != nil {
		return nil, err
	}
	return &CatalogRepository{catalog: c}, nil
}

// LoadCatalogRepository reads the catalog file at name from fsys.
func LoadCatalogRepository(fsys fs.FS, name string) (*CatalogRepository, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	repo, err := NewCatalogRepository(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return repo, nil
}

// DefaultCatalogRepository returns the catalog embedded in the binary.
func DefaultCatalogRepository() (*CatalogRepository, error) {
	return NewCatalogRepository(bytes.NewReader(defaultCatalog))
}

func (c Catalog) checkNames() error {
	seen := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		if _, ok := seen[cat.Nombre]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateCategory, cat.Nombre)
		}
		seen[cat.Nombre] = struct{}{}
	}

	seen = make(map[string]struct{}, len(c.Units))
	for _, u := range c.Units {
		if _, ok := seen[u.Nombre]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateUnit, u.Nombre)
		}
		seen[u.Nombre] = struct{}{}
	}
	return nil
}

func (r *CatalogRepository) GetAllCategories() ([]Category, error) {
	return r.catalog.Categories, nil
}

func (r *CatalogRepository) GetAllUnits() ([]Unit, error) {
	return r.catalog.Units, nil
}

func (r *CatalogRepository) GetAllProducts() ([]ProductRecord, error) {
	return r.catalog.Products, nil
}

func (r *CatalogRepository) GetCategoryByName(name string) (*Category, error) {
	for _, c := range r.catalog.Categories {
		if c.Nombre == name {
			category := c
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r *CatalogRepository) GetUnitByName(name string) (*Unit, error) {
	for _, u := range r.catalog.Units {
		if u.Nombre == name {
			unit := u
			return &unit, nil
		}
	}
	return nil, ErrUnitNotFound
}
