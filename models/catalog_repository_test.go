package models

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogRepository(t *testing.T) {
	repo, err := DefaultCatalogRepository()
	require.NoError(t, err)

	categories, err := repo.GetAllCategories()
	require.NoError(t, err)
	units, err := repo.GetAllUnits()
	require.NoError(t, err)
	products, err := repo.GetAllProducts()
	require.NoError(t, err)

	var categoryNames, unitNames []string
	for _, c := range categories {
		categoryNames = append(categoryNames, c.Nombre)
		assert.NotEmpty(t, c.Descripcion, "category %s should have a description", c.Nombre)
	}
	for _, u := range units {
		unitNames = append(unitNames, u.Nombre)
	}
	assert.Equal(t, []string{"frutas", "verduras", "organicos", "lacteos"}, categoryNames)
	assert.Equal(t, []string{"kg", "500g", "L", "unidad"}, unitNames)

	require.Len(t, products, 9)
	assert.Equal(t, ProductRecord{
		Name:        "Manzanas Fuji",
		Description: "Crujientes y dulces, cultivadas en el Valle del Maule. Perfectas para meriendas saludables o como ingrediente en postres.",
		Price:       1200,
		Category:    "frutas",
		Unit:        "kg",
		Image:       "apples2.jpg",
		Stock:       100,
	}, products[0])
	assert.Equal(t, "Leche Entera", products[8].Name)
	assert.Contains(t, products[3].Description, "O'Higgins")
}

func TestDefaultCatalogReferences(t *testing.T) {
	repo, err := DefaultCatalogRepository()
	require.NoError(t, err)
	products, err := repo.GetAllProducts()
	require.NoError(t, err)

	usedCategories := map[string]bool{}
	for _, p := range products {
		_, err := repo.GetCategoryByName(p.Category)
		assert.NoError(t, err, "product %s", p.Name)
		_, err = repo.GetUnitByName(p.Unit)
		assert.NoError(t, err, "product %s", p.Name)
		usedCategories[p.Category] = true
	}

	categories, _ := repo.GetAllCategories()
	for _, c := range categories {
		assert.True(t, usedCategories[c.Nombre], "category %s has no products", c.Nombre)
	}
}

func TestNewCatalogRepository(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectedErr error
		errContains string
		check       func(t *testing.T, repo *CatalogRepository)
	}{
		{
			name: "Minimal catalog",
			input: `
categories:
  - name: frutas
    description: Frutas frescas
units:
  - name: kg
products:
  - name: Peras
    description: Peras de agua muy jugosas y dulces
    price: 990
    category: frutas
    unit: kg
    image: pears.jpg
    stock: 5
`,
			check: func(t *testing.T, repo *CatalogRepository) {
				products, err := repo.GetAllProducts()
				assert.NoError(t, err)
				assert.Len(t, products, 1)
				assert.Equal(t, 990, products[0].Price)
				assert.Equal(t, "pears.jpg", products[0].Image)
			},
		},
		{
			name:  "Empty document",
			input: "",
			check: func(t *testing.T, repo *CatalogRepository) {
				products, err := repo.GetAllProducts()
				assert.NoError(t, err)
				assert.Empty(t, products)
			},
		},
		{
			name: "Duplicate category",
			input: `
categories:
  - name: frutas
  - name: frutas
`,
			expectedErr: ErrDuplicateCategory,
		},
		{
			name: "Duplicate unit",
			input: `
units:
  - name: kg
  - name: kg
`,
			expectedErr: ErrDuplicateUnit,
		},
		{
			name: "Unknown field is rejected",
			input: `
products:
  - name: Peras
    colour: green
`,
			errContains: "colour",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := NewCatalogRepository(strings.NewReader(tc.input))

			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, repo)
			case tc.errContains != "":
				assert.ErrorContains(t, err, tc.errContains)
			default:
				require.NoError(t, err)
				tc.check(t, repo)
			}
		})
	}
}

func TestLoadCatalogRepository(t *testing.T) {
	fsys := fstest.MapFS{
		"seed/catalog.yaml": &fstest.MapFile{Data: []byte("units:\n  - name: L\n")},
	}

	repo, err := LoadCatalogRepository(fsys, "seed/catalog.yaml")
	require.NoError(t, err)
	unit, err := repo.GetUnitByName("L")
	require.NoError(t, err)
	assert.Equal(t, "L", unit.Nombre)

	_, err = LoadCatalogRepository(fsys, "seed/missing.yaml")
	assert.ErrorContains(t, err, "seed/missing.yaml")
}

func TestGetByNameNotFound(t *testing.T) {
	repo, err := DefaultCatalogRepository()
	require.NoError(t, err)

	_, err = repo.GetCategoryByName("carnes")
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = repo.GetUnitByName("docena")
	assert.ErrorIs(t, err, ErrUnitNotFound)
}
