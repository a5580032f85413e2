package encode

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/signadot/rjson/ir"
)

// EncodeYAML writes v as a YAML document. Object key order is kept.
func EncodeYAML(v *ir.Value, w io.Writer) error {
	node, err := YAMLNode(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

// YAMLNode converts v to a yaml.v3 node tree.
func YAMLNode(v *ir.Value) (*yaml.Node, error) {
	switch v.Type() {
	case ir.NullType:
		return scalar("!!null", "null"), nil
	case ir.BoolType:
		s, _ := v.AsStr()
		return scalar("!!bool", s), nil
	case ir.SignedType, ir.UnsignedType:
		s, _ := v.AsStr()
		return scalar("!!int", s), nil
	case ir.DoubleType:
		f, _ := v.Float64()
		switch {
		case math.IsNaN(f):
			return scalar("!!float", ".nan"), nil
		case math.IsInf(f, 1):
			return scalar("!!float", ".inf"), nil
		case math.IsInf(f, -1):
			return scalar("!!float", "-.inf"), nil
		}
		return scalar("!!float", ir.FormatDouble(f)), nil
	case ir.StringType:
		s, _ := v.Str()
		return scalar("!!str", s), nil
	case ir.ArrayType:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, e := range v.Elements() {
			en, err := YAMLNode(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			node.Content = append(node.Content, en)
		}
		return node, nil
	case ir.ObjectType:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, e := range v.Fields() {
			en, err := YAMLNode(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			node.Content = append(node.Content, scalar("!!str", k), en)
		}
		return node, nil
	}
	return nil, fmt.Errorf("%w: unknown type %s", ErrUnencodable, v.Type())
}

func scalar(tag, val string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
}
