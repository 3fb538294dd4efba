package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Product represents a row of the producto table.
// Column order here is the column order of the generated inserts.
type Product struct {
	ID          uint     `gorm:"column:id;primaryKey"`
	Nombre      string   `gorm:"column:nombre;not null"`
	Descripcion string   `gorm:"column:descripcion;not null"`
	Precio      int      `gorm:"column:precio;not null"`
	IDCategoria uint     `gorm:"column:id_categoria;not null"`
	Categoria   Category `gorm:"foreignKey:IDCategoria"`
	IDUnidad    uint     `gorm:"column:id_unidad;not null"`
	Unidad      Unit     `gorm:"foreignKey:IDUnidad"`
	Stock       int      `gorm:"column:stock;not null"`
	ImagenBytes []byte   `gorm:"column:imagen_bytes"`
}

func (p *Product) TableName() string {
	return "producto"
}

// ProductRecord is one entry of the seed catalog. Category and Unit hold
// names, resolved to ids by the database when the script is loaded.
type ProductRecord struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       int    `yaml:"price"`
	Category    string `yaml:"category"`
	Unit        string `yaml:"unit"`
	Image       string `yaml:"image"`
	Stock       int    `yaml:"stock"`
}

// ErrInvalidProduct is returned when a record breaks a field constraint.
var ErrInvalidProduct = errors.New("invalid product")

const (
	minNameLen        = 3
	maxNameLen        = 120
	minDescriptionLen = 20
	maxDescriptionLen = 1000
)

// Validate checks the record against the producto constraints and makes
// sure its category and unit are part of the catalog.
func (p ProductRecord) Validate(categories, units map[string]struct{}) error {
	var errs []error

	if n := utf8.RuneCountInString(p.Name); n < minNameLen || n > maxNameLen {
		errs = append(errs, fmt.Errorf("%w: name must have %d to %d characters", ErrInvalidProduct, minNameLen, maxNameLen))
	}
	if n := utf8.RuneCountInString(p.Description); n < minDescriptionLen || n > maxDescriptionLen {
		errs = append(errs, fmt.Errorf("%w: description must have %d to %d characters", ErrInvalidProduct, minDescriptionLen, maxDescriptionLen))
	}
	if p.Price < 0 {
		errs = append(errs, fmt.Errorf("%w: negative price %d", ErrInvalidProduct, p.Price))
	}
	if p.Stock < 0 {
		errs = append(errs, fmt.Errorf("%w: negative stock %d", ErrInvalidProduct, p.Stock))
	}
	if p.Image == "" {
		errs = append(errs, fmt.Errorf("%w: missing image file name", ErrInvalidProduct))
	}
	if _, ok := categories[p.Category]; !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrCategoryNotFound, p.Category))
	}
	if _, ok := units[p.Unit]; !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnitNotFound, p.Unit))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("product %q: %w", p.Name, errors.Join(errs...))
}
