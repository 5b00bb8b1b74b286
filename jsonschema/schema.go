package jsonschema

// Schema is a typed JSON Schema fragment for callers that build descriptors in
// Go instead of decoding them. Only the members that affect labels are modeled.
type Schema struct {
	// Core
	Type        any    `json:"type,omitempty" yaml:"type,omitempty"` // string or []string
	Subtype     string `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string           `json:"required,omitempty" yaml:"required,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Composition
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`
}

// Types builds a type list for Schema.Type.
func Types(names ...string) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

// Descriptor renders s as the untyped map a JSON decoder would have produced.
// Unset members are omitted; a nil Schema yields nil.
func (s *Schema) Descriptor() map[string]any {
	if s == nil {
		return nil
	}
	m := map[string]any{}
	switch t := s.Type.(type) {
	case nil:
	case []string:
		m["type"] = Types(t...)
	default:
		m["type"] = t
	}
	putString(m, "subtype", s.Subtype)
	putString(m, "format", s.Format)
	putString(m, "title", s.Title)
	putString(m, "description", s.Description)
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for k, p := range s.Properties {
			props[k] = p.Descriptor()
		}
		m["properties"] = props
	}
	if len(s.Required) > 0 {
		req := make([]any, len(s.Required))
		for i, r := range s.Required {
			req[i] = r
		}
		m["required"] = req
	}
	if s.Items != nil {
		m["items"] = s.Items.Descriptor()
	}
	putList(m, "oneOf", s.OneOf)
	putList(m, "anyOf", s.AnyOf)
	putList(m, "allOf", s.AllOf)
	return m
}

func putString(m map[string]any, key, v string) {
	if v != "" {
		m[key] = v
	}
}

func putList(m map[string]any, key string, list []*Schema) {
	if len(list) == 0 {
		return
	}
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = s.Descriptor()
	}
	m[key] = out
}
