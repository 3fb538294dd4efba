package models

import (
	"fmt"
	"sync"

	"gorm.io/gorm/schema"
)

var schemaCache sync.Map

// ParseSchema returns the gorm schema of model.
func ParseSchema(model any) (*schema.Schema, error) {
	s, err := schema.Parse(model, &schemaCache, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("parsing schema of %T: %w", model, err)
	}
	return s, nil
}

// InsertFields lists the fields of s a seed insert fills, in declaration
// order. The primary key is left to the database.
func InsertFields(s *schema.Schema) []*schema.Field {
	var fields []*schema.Field
	for _, f := range s.Fields {
		if f.DBName == "" || f.PrimaryKey {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

func InsertColumns(s *schema.Schema) []string {
	fields := InsertFields(s)
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.DBName
	}
	return columns
}

// Column returns the column name of the named struct field.
func Column(s *schema.Schema, fieldName string) (string, error) {
	f := s.LookUpField(fieldName)
	if f == nil || f.DBName == "" {
		return "", fmt.Errorf("%s has no column for field %s", s.Table, fieldName)
	}
	return f.DBName, nil
}
