// Package schemalabel turns JSON-Schema-like descriptors and raw labels into
// text suitable for display.
//
// It provides:
//
// - DataType/IsAnyType to summarize the type of a schema descriptor ("array<string>", "mixed", ...)
// - PrettifyString/PrettifyAbbreviation to turn identifiers into readable labels
// - HTMLEntities/HTMLEntitiesDecode for the four characters that matter in attribute values
// - FriendlyLinks to filter, title and sort link lists
// - CountObjectKeys/IsTableLike to decide whether a collection can be shown as a table
//
// Design policy:
// - Every function is pure and never fails; malformed input yields an empty or nil result.
// - Inputs are the untyped values produced by JSON/YAML decoders (map[string]any, []any).
//   Typed maps, slices and json-tagged structs such as *jsonschema.Schema are normalized first.
// - Package-level functions use a default Formatter; build your own with New to inject
//   a numeric detector, a logger or a different rel ignore list.
//
// Typical usage:
//
//	var schema any
//	_ = json.Unmarshal(data, &schema)
//	label := schemalabel.DataType(schema, false, 0) // "list (array<string>)"
//
//	links := schemalabel.FriendlyLinks(doc.Links)
package schemalabel
