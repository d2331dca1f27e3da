package shape

import (
	"fmt"

	"github.com/amp-labs/datacheck/errors"
)

// Template describes the expected shape of a value. It is either a nested
// mapping of named sub-templates (see Nested) or a primitive type descriptor
// (see Leaf). The zero Template is neither and is rejected by Validate.
type Template struct {
	nested bool
	kind   Kind
	fields []Field
	index  map[string]int
}

// Field is one named entry of a nested template.
type Field struct {
	Key      string
	Template Template
}

// Key is shorthand for building a Field.
func Key(name string, tmpl Template) Field {
	return Field{Key: name, Template: tmpl}
}

// Leaf returns a template that accepts values of exactly the given kind.
func Leaf(kind Kind) Template {
	return Template{kind: kind}
}

// Nested returns a mapping template. The order of fields is the order in
// which the validator visits keys. If a key repeats, the first field wins
// for lookups and Validate reports the duplicate.
func Nested(fields ...Field) Template {
	t := Template{
		nested: true,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	copy(t.fields, fields)

	for i, f := range fields {
		if _, dup := t.index[f.Key]; !dup {
			t.index[f.Key] = i
		}
	}

	return t
}

func (t Template) IsNested() bool {
	return t.nested
}

func (t Template) IsLeaf() bool {
	return !t.nested && t.kind.IsValid()
}

// IsZero reports whether t is the zero Template.
func (t Template) IsZero() bool {
	return !t.nested && t.kind == invalidKind
}

// Kind is the leaf descriptor; it is invalid for nested templates.
func (t Template) Kind() Kind {
	return t.kind
}

// Fields returns a copy of the nested fields in template order.
func (t Template) Fields() []Field {
	out := make([]Field, len(t.fields))
	copy(out, t.fields)

	return out
}

func (t Template) Len() int {
	return len(t.fields)
}

// Lookup finds the sub-template for key.
func (t Template) Lookup(key string) (Template, bool) {
	i, ok := t.index[key]
	if !ok {
		return Template{}, false
	}

	return t.fields[i].Template, true
}

// Validate reports the first structural problem in the template tree: a
// zero node, an empty or duplicated key, or an unknown kind.
func (t Template) Validate() error {
	return t.check("")
}

func (t Template) check(path string) error {
	if !t.nested {
		if !t.kind.IsValid() {
			return fmt.Errorf("%w: no type at %q", errors.ErrInvalidTemplate, path)
		}

		return nil
	}

	seen := make(map[string]struct{}, len(t.fields))

	for _, f := range t.fields {
		sub := Join(path, f.Key)

		if f.Key == "" {
			return fmt.Errorf("%w: empty key at %q", errors.ErrInvalidTemplate, path)
		}

		if _, dup := seen[f.Key]; dup {
			return fmt.Errorf("%w: duplicate key %q", errors.ErrInvalidTemplate, sub)
		}

		seen[f.Key] = struct{}{}

		if err := f.Template.check(sub); err != nil {
			return err
		}
	}

	return nil
}

// Join extends a dotted path by one key. The root path is empty.
func Join(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}
