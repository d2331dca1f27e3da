// Package shape defines templates: recursive descriptions of the keys and
// primitive types a nested document is expected to have.
//
// A Template is a closed union of two cases. Nested holds an ordered list of
// named sub-templates and matches a map[string]any with exactly those keys.
// Leaf holds a Kind and matches a scalar of exactly that Go type family.
//
//	tmpl := shape.Nested(
//	    shape.Key("name", shape.Leaf(shape.String)),
//	    shape.Key("address", shape.Nested(
//	        shape.Key("zip", shape.Leaf(shape.Integer)),
//	    )),
//	)
//
// Templates can also be read from YAML or JSON with Parse:
//
//	name: string
//	address:
//	  zip: integer
package shape
