package shape

import (
	"fmt"

	"github.com/amp-labs/datacheck/errors"
	"gopkg.in/yaml.v3"
)

// Parse reads a template from YAML or JSON. Mappings become nested templates
// in document order; scalars are type descriptor names.
func Parse(doc []byte) (Template, error) {
	var t Template

	if err := yaml.Unmarshal(doc, &t); err != nil {
		return Template{}, err
	}

	if t.IsZero() {
		return Template{}, fmt.Errorf("%w: empty document", errors.ErrInvalidTemplate)
	}

	return t, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Template) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := fromNode(node)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler, keeping field order.
func (t Template) MarshalYAML() (any, error) {
	return t.toNode()
}

func fromNode(node *yaml.Node) (Template, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Template{}, nil
		}

		return fromNode(node.Content[0])
	case yaml.ScalarNode:
		kind, err := ParseKind(node.Value)
		if err != nil {
			return Template{}, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return Leaf(kind), nil
	case yaml.MappingNode:
		fields := make([]Field, 0, len(node.Content)/2)
		seen := make(map[string]struct{}, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]

			if keyNode.Kind != yaml.ScalarNode {
				return Template{}, fmt.Errorf("line %d: %w: mapping keys must be scalars",
					keyNode.Line, errors.ErrInvalidTemplate)
			}

			if _, dup := seen[keyNode.Value]; dup {
				return Template{}, fmt.Errorf("line %d: %w: duplicate key %q",
					keyNode.Line, errors.ErrInvalidTemplate, keyNode.Value)
			}

			seen[keyNode.Value] = struct{}{}

			sub, err := fromNode(valNode)
			if err != nil {
				return Template{}, err
			}

			fields = append(fields, Key(keyNode.Value, sub))
		}

		return Nested(fields...), nil
	case yaml.SequenceNode, yaml.AliasNode:
		return Template{}, fmt.Errorf("line %d: %w: only mappings and type names are allowed",
			node.Line, errors.ErrInvalidTemplate)
	default:
		return Template{}, fmt.Errorf("line %d: %w", node.Line, errors.ErrInvalidTemplate)
	}
}

func (t Template) toNode() (*yaml.Node, error) {
	if !t.nested {
		if !t.kind.IsValid() {
			return nil, fmt.Errorf("%w: no type", errors.ErrInvalidTemplate)
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.kind.String()}, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, f := range t.fields {
		val, err := f.Template.toNode()
		if err != nil {
			return nil, err
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}, val)
	}

	return node, nil
}
