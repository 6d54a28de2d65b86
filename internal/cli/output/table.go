package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
	"time"
)

// Table is tab-aligned tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends one row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// TableFormatter renders values as tab-aligned tables. Tables render
// directly; maps become sorted KEY/VALUE rows, structs FIELD/VALUE
// rows. Anything else falls back to indented JSON.
type TableFormatter struct {
	Wide bool
}

// Format implements Formatter.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	switch t := data.(type) {
	case *Table:
		return t.Render(w)
	case Table:
		return t.Render(w)
	}

	if t, ok := toTable(data); ok {
		return t.Render(w)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// toTable converts maps and structs to key-value tables.
func toTable(data any) (*Table, bool) {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		return mapToTable(v), true
	case reflect.Struct:
		return structToTable(v), true
	}
	return nil, false
}

// mapToTable renders a map as KEY/VALUE rows in sorted key order, so
// repeated runs print identically.
func mapToTable(v reflect.Value) *Table {
	t := &Table{Headers: []string{"KEY", "VALUE"}}

	keys := make([]string, 0, v.Len())
	byKey := make(map[string]reflect.Value, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k := formatCell(iter.Key())
		keys = append(keys, k)
		byKey[k] = iter.Value()
	}
	sort.Strings(keys)

	for _, k := range keys {
		t.AddRow(k, formatCell(byKey[k]))
	}
	return t
}

// structToTable renders one struct as FIELD/VALUE rows. Field names
// come from json tags when present.
func structToTable(v reflect.Value) *Table {
	t := &Table{Headers: []string{"FIELD", "VALUE"}}

	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, _, _ := strings.Cut(field.Tag.Get("json"), ","); tag != "" && tag != "-" {
			name = tag
		}
		t.AddRow(name, formatCell(v.Field(i)))
	}
	return t
}

// formatCell formats one value for a table cell. Empty values render
// as a dash so columns stay visually aligned.
func formatCell(v reflect.Value) string {
	if !v.IsValid() {
		return "-"
	}
	if v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "-"
		}
		v = v.Elem()
	}

	switch {
	case v.Type() == reflect.TypeOf(time.Duration(0)):
		return v.Interface().(time.Duration).String()
	case v.Type() == reflect.TypeOf(time.Time{}):
		ts := v.Interface().(time.Time)
		if ts.IsZero() {
			return "-"
		}
		return ts.Format("2006-01-02 15:04:05")
	}

	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			return "-"
		}
		return v.String()
	case reflect.Bool:
		return fmt.Sprintf("%t", v.Bool())
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "-"
		}
		cells := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			cells[i] = formatCell(v.Index(i))
		}
		return strings.Join(cells, ", ")
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
