package models

// Category represents a product category.
// Products reference it by name; the database assigns the id.
type Category struct {
	ID          uint   `gorm:"column:id;primaryKey" yaml:"-"`
	Nombre      string `gorm:"column:nombre;unique;not null" yaml:"name"`
	Descripcion string `gorm:"column:descripcion" yaml:"description"`
}

func (c *Category) TableName() string {
	return "categoria"
}

// Unit is a unit of measure for stock and pricing (kg, L, ...).
type Unit struct {
	ID     uint   `gorm:"column:id;primaryKey" yaml:"-"`
	Nombre string `gorm:"column:nombre;unique;not null" yaml:"name"`
}

func (u *Unit) TableName() string {
	return "unidad"
}
