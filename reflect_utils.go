package schemalabel

import (
	"reflect"
	"strings"
)

// Descriptor is implemented by typed schemas (see jsonschema.Schema) that can
// render themselves as an untyped descriptor tree.
type Descriptor interface {
	Descriptor() map[string]any
}

// normalize converts v into the JSON-like shape the classifiers expect:
// map[string]any for keyed objects, []any for sequences and plain scalars
// otherwise. Only the top level is converted; nested values are normalized
// when they are visited.
func normalize(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		if t == nil {
			return nil
		}
		return t
	case []any:
		if t == nil {
			return nil
		}
		return t
	case string, bool, float64, int, int64:
		return t
	case Descriptor:
		m := t.Descriptor()
		if m == nil {
			return nil
		}
		return m
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return rv.Interface()
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Struct:
		return structToMap(rv)
	}
	return rv.Interface()
}

func structToMap(rv reflect.Value) map[string]any {
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key, omitEmpty := resolveStructKey(sf)
		if key == "-" {
			continue
		}
		fv := rv.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}
		out[key] = fv.Interface()
	}
	return out
}

// resolveStructKey returns the external key of a struct field.
// Priority: json tag name > field name; "-" disables the field.
func resolveStructKey(sf reflect.StructField) (string, bool) {
	jt := sf.Tag.Get("json")
	if jt == "" {
		return sf.Name, false
	}
	if jt == "-" {
		return "-", false
	}
	name, opts, _ := strings.Cut(jt, ",")
	omitEmpty := false
	for _, o := range strings.Split(opts, ",") {
		if o == "omitempty" || o == "omitzero" {
			omitEmpty = true
		}
	}
	if name == "" {
		name = sf.Name
	}
	return name, omitEmpty
}
