package importsql

import (
	"fmt"
	"strings"

	"github.com/onieto/huertohogar-importsql/models"
	"gorm.io/driver/postgres"
)

// BuildSchema renders CREATE TABLE statements for the tables the seed
// script inserts into, referenced tables first. Column types are the ones
// the Postgres dialector picks for each gorm field.
func BuildSchema() (string, error) {
	var dialector postgres.Dialector
	var sb strings.Builder

	for _, model := range []any{&models.Category{}, &models.Unit{}, &models.Product{}} {
		s, err := models.ParseSchema(model)
		if err != nil {
			return "", err
		}

		references := map[string]string{}
		for _, rel := range s.Relationships.BelongsTo {
			for _, ref := range rel.References {
				if ref.ForeignKey == nil || ref.PrimaryKey == nil {
					continue
				}
				references[ref.ForeignKey.DBName] = fmt.Sprintf("%s (%s)", rel.FieldSchema.Table, ref.PrimaryKey.DBName)
			}
		}

		var cols []string
		for _, f := range s.Fields {
			if f.DBName == "" {
				continue
			}
			col := f.DBName + " " + dialector.DataTypeOf(f)
			if f.PrimaryKey {
				col += " PRIMARY KEY"
			} else {
				if f.NotNull {
					col += " NOT NULL"
				}
				if f.Unique {
					col += " UNIQUE"
				}
			}
			if target, ok := references[f.DBName]; ok {
				col += " REFERENCES " + target
			}
			cols = append(cols, "    "+col)
		}

		fmt.Fprintf(&sb, "CREATE TABLE IF NOT EXISTS %s (\n%s\n);\n\n", s.Table, strings.Join(cols, ",\n"))
	}

	return sb.String(), nil
}
