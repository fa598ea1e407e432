package adapt

import (
	"maps"
	"reflect"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field names of the base state pair.
const (
	FieldValue = "value"
	FieldSet   = "set"
)

// tagName is the struct tag that renames an adapter field.
// `adapt:"-"` hides the field from Fields.
const tagName = "adapt"

// Fields is a structural view of a merged result: field name to value.
type Fields map[string]any

// Keys returns the field names in sorted order.
func (f Fields) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// Merge returns a new Fields holding every entry of base and overlay.
// When both define a name, overlay wins.
func Merge(base, overlay Fields) Fields {
	merged := make(Fields, len(base)+len(overlay))
	maps.Copy(merged, base)
	maps.Copy(merged, overlay)
	return merged
}

// FieldsOf returns the exported fields of an adapter output.
//
// Structs (or pointers to structs) contribute one entry per exported field,
// named by the `adapt` tag or else by the field name with its first letter
// lowered, so IsDark becomes "isDark". Embedded structs without a tag are
// flattened. A Fields or map[string]any value is copied as is. Anything
// else, including nil, contributes nothing. Unexported fields are skipped.
func FieldsOf(v any) Fields {
	fields := Fields{}
	switch typed := v.(type) {
	case nil:
		return fields
	case Fields:
		maps.Copy(fields, typed)
		return fields
	case map[string]any:
		maps.Copy(fields, typed)
		return fields
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fields
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fields
	}
	collectFields(rv, fields)
	return fields
}

// collectFields follows Go's promotion rule: a struct's own fields win
// over fields promoted from its embedded structs.
func collectFields(rv reflect.Value, into Fields) {
	promoted := Fields{}
	direct := Fields{}
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		tag, hasTag := sf.Tag.Lookup(tagName)
		if tag == "-" {
			continue
		}
		// Exported fields of an unexported embedded struct are still promoted.
		if sf.Anonymous && !hasTag {
			inner := rv.Field(i)
			if inner.Kind() == reflect.Pointer {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				collectFields(inner, promoted)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "" {
			name = lowerFirst(sf.Name)
		}
		direct[name] = rv.Field(i).Interface()
	}
	maps.Copy(into, promoted)
	maps.Copy(into, direct)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
