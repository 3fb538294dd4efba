package importsql

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/onieto/huertohogar-importsql/models"
	"gorm.io/gorm/schema"
)

type CatalogProvider interface {
	GetAllCategories() ([]models.Category, error)
	GetAllUnits() ([]models.Unit, error)
	GetAllProducts() ([]models.ProductRecord, error)
}

type ImageEncoder interface {
	Encode(fileName string) (string, error)
}

// Script is a rendered seed script.
type Script struct {
	SQL      string
	Products int
}

// table is the part of a gorm schema the renderer needs.
type table struct {
	name    string
	pk      string
	nameCol string
	fields  []*schema.Field
}

func newTable(model any, nameField string) (table, error) {
	s, err := models.ParseSchema(model)
	if err != nil {
		return table{}, err
	}
	if s.PrioritizedPrimaryField == nil {
		return table{}, fmt.Errorf("%s has no primary key", s.Table)
	}
	t := table{
		name:   s.Table,
		pk:     s.PrioritizedPrimaryField.DBName,
		fields: models.InsertFields(s),
	}
	if nameField != "" {
		if t.nameCol, err = models.Column(s, nameField); err != nil {
			return table{}, err
		}
	}
	return t, nil
}

func (t table) columnList() string {
	cols := make([]string, len(t.fields))
	for i, f := range t.fields {
		cols[i] = f.DBName
	}
	return strings.Join(cols, ", ")
}

// values renders one value per insert field, looked up by Go field name.
func (t table) values(byField map[string]string) ([]string, error) {
	out := make([]string, len(t.fields))
	for i, f := range t.fields {
		v, ok := byField[f.Name]
		if !ok {
			return nil, fmt.Errorf("no value for %s.%s", t.name, f.DBName)
		}
		out[i] = v
	}
	return out, nil
}

type Builder struct {
	repo   CatalogProvider
	images ImageEncoder

	category table
	unit     table
	product  table
}

func NewBuilder(r CatalogProvider, images ImageEncoder) (*Builder, error) {
	b := &Builder{repo: r, images: images}

	var err error
	if b.category, err = newTable(&models.Category{}, "Nombre"); err != nil {
		return nil, err
	}
	if b.unit, err = newTable(&models.Unit{}, "Nombre"); err != nil {
		return nil, err
	}
	if b.product, err = newTable(&models.Product{}, ""); err != nil {
		return nil, err
	}
	return b, nil
}

// Build renders categories, then units, then one statement per product in
// catalog order. Every product is validated before any image is read.
func (b *Builder) Build() (*Script, error) {
	categories, err := b.repo.GetAllCategories()
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	units, err := b.repo.GetAllUnits()
	if err != nil {
		return nil, fmt.Errorf("fetching units: %w", err)
	}
	products, err := b.repo.GetAllProducts()
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}

	if err := validate(categories, units, products); err != nil {
		return nil, err
	}

	var sb strings.Builder

	writeSection(&sb, "POBLAR CATEGORÍAS")
	for _, c := range categories {
		vals, err := b.category.values(map[string]string{
			"Nombre":      quote(c.Nombre),
			"Descripcion": quote(c.Descripcion),
		})
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES\n(%s);\n\n", b.category.name, b.category.columnList(), strings.Join(vals, ", "))
	}

	writeSection(&sb, "POBLAR UNIDADES (medidas.json)")
	for _, u := range units {
		vals, err := b.unit.values(map[string]string{
			"Nombre": quote(u.Nombre),
		})
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES (%s);\n", b.unit.name, b.unit.columnList(), strings.Join(vals, ", "))
	}
	sb.WriteString("\n")

	writeSection(&sb, "POBLAR PRODUCTOS CON IMÁGENES BASE64")
	sb.WriteString("\n")
	for _, p := range products {
		if err := b.writeProduct(&sb, p); err != nil {
			return nil, err
		}
	}

	return &Script{SQL: sb.String(), Products: len(products)}, nil
}

func (b *Builder) writeProduct(sb *strings.Builder, p models.ProductRecord) error {
	encoded, err := b.images.Encode(p.Image)
	if err != nil {
		return fmt.Errorf("product %q: %w", p.Name, err)
	}

	vals, err := b.product.values(map[string]string{
		"Nombre":      quote(p.Name),
		"Descripcion": quote(p.Description),
		"Precio":      strconv.Itoa(p.Price),
		"IDCategoria": "c." + b.category.pk,
		"IDUnidad":    "u." + b.unit.pk,
		"Stock":       strconv.Itoa(p.Stock),
		"ImagenBytes": "decode(" + quote(encoded) + ", 'base64')",
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(sb, "-- %s\n", strings.Join(strings.Fields(p.Name), " "))
	fmt.Fprintf(sb, "INSERT INTO %s (%s)\n", b.product.name, b.product.columnList())
	fmt.Fprintf(sb, "SELECT %s\n", strings.Join(vals, ",\n       "))
	fmt.Fprintf(sb, "FROM %s c, %s u\n", b.category.name, b.unit.name)
	fmt.Fprintf(sb, "WHERE c.%s = %s AND u.%s = %s;\n\n", b.category.nameCol, quote(p.Category), b.unit.nameCol, quote(p.Unit))

	slog.Debug("product rendered", "name", p.Name, "category", p.Category, "unit", p.Unit, "image_chars", len(encoded))
	return nil
}

func validate(categories []models.Category, units []models.Unit, products []models.ProductRecord) error {
	categoryNames := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		categoryNames[c.Nombre] = struct{}{}
	}
	unitNames := make(map[string]struct{}, len(units))
	for _, u := range units {
		unitNames[u.Nombre] = struct{}{}
	}

	var errs []error
	for _, p := range products {
		if err := p.Validate(categoryNames, unitNames); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func writeSection(sb *strings.Builder, title string) {
	const rule = "-- ============================================\n"
	sb.WriteString(rule)
	sb.WriteString("-- " + title + "\n")
	sb.WriteString(rule)
}

// quote renders s as a SQL string literal. Doubling single quotes is the
// only escaping applied.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
