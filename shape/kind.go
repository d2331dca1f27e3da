package shape

import (
	"fmt"
	"strings"

	"github.com/amp-labs/datacheck/errors"
)

// Kind is a primitive type descriptor for a leaf template.
type Kind int

const (
	invalidKind Kind = iota
	Integer
	String
	Boolean
	Float
)

var kindNames = map[Kind]string{ //nolint:gochecknoglobals
	Integer: "integer",
	String:  "string",
	Boolean: "boolean",
	Float:   "float",
}

var kindAliases = map[string]Kind{ //nolint:gochecknoglobals
	"integer": Integer,
	"int":     Integer,
	"string":  String,
	"str":     String,
	"boolean": Boolean,
	"bool":    Boolean,
	"float":   Float,
}

// ParseKind maps a descriptor name (case-insensitive) to a Kind.
func ParseKind(name string) (Kind, error) {
	kind, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return invalidKind, fmt.Errorf("%w: unknown type %q", errors.ErrInvalidTemplate, name)
	}

	return kind, nil
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) IsValid() bool {
	_, ok := kindNames[k]

	return ok
}

// Matches reports whether v's dynamic type is exactly this kind. There is
// no coercion: bool never satisfies Integer and integers never satisfy Float.
func (k Kind) Matches(v any) bool {
	switch k {
	case Integer:
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		}
	case String:
		_, ok := v.(string)

		return ok
	case Boolean:
		_, ok := v.(bool)

		return ok
	case Float:
		switch v.(type) {
		case float32, float64:
			return true
		}
	case invalidKind:
	}

	return false
}

// KindOf returns the Kind that matches v, if any.
func KindOf(v any) (Kind, bool) {
	for _, k := range []Kind{Integer, String, Boolean, Float} {
		if k.Matches(v) {
			return k, true
		}
	}

	return invalidKind, false
}
