package content

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// typeMismatch is a JSON value whose kind does not fit the Go field it decodes into.
type typeMismatch struct {
	path     string
	expected string
	got      string
}

func (m typeMismatch) String() string {
	path := m.path
	if path == "" {
		path = "document"
	}
	return fmt.Sprintf("%s: expected %s, got %s", path, m.expected, m.got)
}

// shapeMismatches walks a document decoded into plain Go values (map[string]any,
// []any, string, float64, bool, nil) alongside the type it should decode into.
// Paths use the same notation as the validator: members[0].full_name,
// opening_hours[monday][0].opens. A null is never a mismatch; required fields
// are left to the validator.
func shapeMismatches(value any, t reflect.Type, path string) []typeMismatch {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if value == nil {
		return nil
	}

	mismatch := func(expected string) []typeMismatch {
		return []typeMismatch{{path: path, expected: expected, got: jsonKind(value)}}
	}

	switch t.Kind() {
	case reflect.String:
		if _, ok := value.(string); !ok {
			return mismatch("string")
		}
	case reflect.Bool:
		if _, ok := value.(bool); !ok {
			return mismatch("boolean")
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if _, ok := value.(float64); !ok {
			return mismatch("number")
		}
	case reflect.Slice, reflect.Array:
		items, ok := value.([]any)
		if !ok {
			return mismatch("array")
		}
		var mismatches []typeMismatch
		for i, item := range items {
			mismatches = append(mismatches, shapeMismatches(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i))...)
		}
		return mismatches
	case reflect.Map:
		object, ok := value.(map[string]any)
		if !ok {
			return mismatch("object")
		}
		keys := make([]string, 0, len(object))
		for key := range object {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		var mismatches []typeMismatch
		for _, key := range keys {
			mismatches = append(mismatches, shapeMismatches(object[key], t.Elem(), fmt.Sprintf("%s[%s]", path, key))...)
		}
		return mismatches
	case reflect.Struct:
		object, ok := value.(map[string]any)
		if !ok {
			return mismatch("object")
		}
		var mismatches []typeMismatch
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			name, ok := jsonName(field)
			if !ok {
				continue
			}
			raw, present := object[name]
			if !present {
				continue
			}
			mismatches = append(mismatches, shapeMismatches(raw, field.Type, joinPath(path, name))...)
		}
		return mismatches
	}

	return nil
}

func jsonName(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return "", false
	case "":
		return field.Name, true
	}
	return name, true
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func jsonKind(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "null"
}

// covered reports whether path is one of the mismatched paths or lies below one.
func covered(path string, mismatches []typeMismatch) bool {
	for _, m := range mismatches {
		if m.path == "" || path == m.path ||
			strings.HasPrefix(path, m.path+".") || strings.HasPrefix(path, m.path+"[") {
			return true
		}
	}
	return false
}
