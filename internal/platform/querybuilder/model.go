package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the db-tagged fields of model. Fields
// tagged `db:"col,omitempty"` are left out while they hold their zero value,
// so serial ids can stay on the row struct.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	fields, err := modelFields(model)
	if err != nil {
		return "", nil, err
	}

	cols := make([]string, 0, len(fields))
	vals := make([]any, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, f.column)
		vals = append(vals, f.value)
	}

	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

type modelField struct {
	column string
	value  any
}

func modelFields(model any) ([]modelField, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be struct, got %s", v.Kind())
	}

	t := v.Type()
	out := make([]modelField, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		column, opts, _ := strings.Cut(sf.Tag.Get("db"), ",")
		column = strings.TrimSpace(column)
		if column == "" || column == "-" {
			continue
		}
		if opts == "omitempty" && v.Field(i).IsZero() {
			continue
		}

		out = append(out, modelField{column: column, value: v.Field(i).Interface()})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("model has no db columns")
	}
	return out, nil
}
