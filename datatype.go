package schemalabel

import (
	"fmt"
	"strings"
)

const (
	labelAny   = "any"
	labelMixed = "mixed"
)

// typeExpr is the classified shape of a schema descriptor.
type typeExpr interface{ isTypeExpr() }

type (
	// anyExpr matches every value.
	anyExpr struct{}
	// choiceExpr is a list of alternatives: a sequence schema or oneOf/anyOf.
	choiceExpr struct{ alts []any }
	// multiTypeExpr is a schema whose type is a list of names.
	multiTypeExpr struct {
		schema map[string]any
		names  []any
	}
	// arrayExpr is an array with a typed items schema.
	arrayExpr struct {
		items   map[string]any
		subtype string
		hasSub  bool
	}
	// typedExpr is a named type refined by a subtype label.
	typedExpr struct{ name, subtype string }
	// plainExpr is passed through as-is.
	plainExpr struct{ value any }
)

func (anyExpr) isTypeExpr()       {}
func (choiceExpr) isTypeExpr()    {}
func (multiTypeExpr) isTypeExpr() {}
func (arrayExpr) isTypeExpr()     {}
func (typedExpr) isTypeExpr()     {}
func (plainExpr) isTypeExpr()     {}

// IsAnyType reports whether schema accepts any value: it is not a keyed
// object or sequence, or it is a keyed object without type, oneOf, allOf
// and anyOf.
func IsAnyType(schema any) bool {
	switch s := normalize(schema).(type) {
	case []any:
		return false
	case map[string]any:
		return !hasAny(s, "type", "oneOf", "allOf", "anyOf")
	default:
		return true
	}
}

// DataType renders a human-readable label for the type of schema.
// short selects the compact form used for nested positions; depth is the
// nesting level of schema (0 for the top level).
func DataType(schema any, short bool, depth int) string {
	return Default().DataType(schema, short, depth)
}

// DataTypeShort is DataType(schema, true, 0).
func DataTypeShort(schema any) string { return DataType(schema, true, 0) }

// DataTypeFull is DataType(schema, false, 0).
func DataTypeFull(schema any) string { return DataType(schema, false, 0) }

// DataType renders a human-readable label for the type of schema.
func (f *Formatter) DataType(schema any, short bool, depth int) string {
	return renderType(classify(normalize(schema), nil, false), short, depth)
}

// classify maps a normalized schema onto a typeExpr. When override is set the
// schema's own type is replaced by typ (used while expanding type lists).
func classify(schema any, typ any, override bool) typeExpr {
	if IsAnyType(schema) {
		return anyExpr{}
	}
	if alts, ok := schema.([]any); ok {
		return choiceExpr{alts: alts}
	}
	m := schema.(map[string]any)
	if hasAny(m, "oneOf", "anyOf") {
		return choiceExpr{alts: alternatives(m)}
	}
	if !override {
		typ = m["type"]
	}
	switch t := normalize(typ).(type) {
	case []any:
		return multiTypeExpr{schema: m, names: t}
	case string:
		subtype, hasSub := m["subtype"].(string)
		if strings.EqualFold(t, "array") {
			if items, ok := normalize(m["items"]).(map[string]any); ok && hasAny(items, "type") {
				return arrayExpr{items: items, subtype: subtype, hasSub: hasSub}
			}
		}
		if hasSub {
			return typedExpr{name: t, subtype: subtype}
		}
		return plainExpr{value: t}
	default:
		return plainExpr{value: t}
	}
}

func renderType(e typeExpr, short bool, depth int) string {
	switch e := e.(type) {
	case anyExpr:
		return labelAny
	case choiceExpr:
		if short {
			return labelMixed
		}
		labels := make([]string, 0, len(e.alts))
		for _, alt := range e.alts {
			labels = append(labels, renderType(classify(normalize(alt), nil, false), short, depth))
		}
		return strings.Join(labels, ", ")
	case multiTypeExpr:
		labels := make([]string, 0, len(e.names))
		for _, name := range e.names {
			labels = append(labels, renderType(classify(e.schema, name, true), short, depth))
		}
		if short {
			return strings.Join(labels, "|")
		}
		return strings.Join(labels, ", ")
	case arrayExpr:
		arrType := "array<" + renderType(classify(e.items, nil, false), true, depth+1) + ">"
		if !e.hasSub {
			return arrType
		}
		if depth > 0 {
			return e.subtype
		}
		return withSubtype(e.subtype, arrType, short)
	case typedExpr:
		return withSubtype(e.subtype, e.name, short)
	case plainExpr:
		switch v := e.value.(type) {
		case nil:
			return ""
		case string:
			return v
		default:
			return fmt.Sprint(v)
		}
	}
	return ""
}

func withSubtype(subtype, typ string, short bool) string {
	if short {
		return subtype + ":" + typ
	}
	return subtype + " (" + typ + ")"
}

// alternatives picks oneOf when it is a list and anyOf otherwise.
func alternatives(m map[string]any) []any {
	if alts, ok := normalize(m["oneOf"]).([]any); ok {
		return alts
	}
	if alts, ok := normalize(m["anyOf"]).([]any); ok {
		return alts
	}
	return nil
}

func hasAny(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
