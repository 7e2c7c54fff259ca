// Package export renders entity collections and reports as CSV or XLSX.
package export

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var (
	ErrNoData        = errors.New("no data to export")
	ErrUnknownFormat = errors.New("unknown export format")
)

// Table is a header row plus the cell values of each record, in field order.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// FromRecords builds a table from a slice of structs. Column names come
// from the json tags of the element type.
func FromRecords(name string, records any) (*Table, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("export %s: expected a slice, got %T", name, records)
	}
	if v.Len() == 0 {
		return nil, ErrNoData
	}

	elem := v.Type().Elem()
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("export %s: expected struct records, got %s", name, elem)
	}

	var (
		header []string
		fields []int
	)
	for i := 0; i < elem.NumField(); i++ {
		f := elem.Field(i)
		if !f.IsExported() {
			continue
		}
		col := columnName(f)
		if col == "" {
			continue
		}
		header = append(header, col)
		fields = append(fields, i)
	}

	t := &Table{Name: name, Header: header, Rows: make([][]any, 0, v.Len())}
	for i := 0; i < v.Len(); i++ {
		rec := reflect.Indirect(v.Index(i))
		if !rec.IsValid() {
			continue
		}
		row := make([]any, len(fields))
		for j, idx := range fields {
			row[j] = cellValue(rec.Field(idx))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Filename is "<name>-<YYYY-MM-DD>.<format>".
func Filename(name, date, format string) string {
	return fmt.Sprintf("%s-%s.%s", name, date, format)
}

func ContentType(format string) string {
	switch format {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Render encodes the table in the requested format.
func Render(t *Table, format string) ([]byte, error) {
	switch format {
	case "", FormatCSV:
		return CSV(t)
	case FormatXLSX:
		return XLSX(t)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func columnName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

func cellValue(v reflect.Value) any {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	switch x := v.Interface().(type) {
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	default:
		return fmt.Sprint(v.Interface())
	}
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
