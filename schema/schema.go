package schema

import (
	"fmt"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"
)

const DefaultURI = "https://json-schema.org/draft/2020-12/schema"

// Schema is the parsed form of a JSON-Schema document. The top level
// type is object, array or both.
type Schema struct {
	Schema      string
	ID          string
	Title       string
	Description string
	Types       Types
	Properties  []*Property
	Required    []string
}

func New() *Schema {
	return &Schema{Schema: DefaultURI}
}

// Parse parses a schema document.
func Parse(d []byte, opts ...parse.ParseOption) (*Schema, error) {
	v, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return FromValue(v)
}

// ParseFile parses the schema document at path.
func ParseFile(path string, opts ...parse.ParseOption) (*Schema, error) {
	v, err := parse.ParseFile(path, parse.ReadAll, opts...)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}
	return FromValue(v)
}

// FromValue walks a parsed document into a Schema. All consistency
// checks happen here.
func FromValue(v *ir.Value) (*Schema, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: schema root must be an object, got %s", ErrSchema, v.Type())
	}
	s := New()
	for _, kw := range []struct {
		key string
		dst *string
	}{
		{"$schema", &s.Schema},
		{"$id", &s.ID},
		{"title", &s.Title},
		{"description", &s.Description},
	} {
		str, err := optString(v, kw.key)
		if err != nil {
			return nil, err
		}
		if str != "" {
			*kw.dst = str
		}
	}
	tv, err := v.Get("type")
	if err != nil {
		return nil, fmt.Errorf("%w: type missing in schema", ErrSchema)
	}
	if err := s.Types.AddValue(tv); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if !s.Types.OnlyContainers() {
		return nil, fmt.Errorf("%w: top-level schema type must be an object or an array, got %s", ErrSchema, &s.Types)
	}
	pv, err := v.Get("properties")
	hasProps := err == nil
	switch {
	case s.Types.Has(ObjectType) && !hasProps:
		return nil, fmt.Errorf("%w: properties missing in schema", ErrSchema)
	case s.Types.Has(ObjectType):
		if s.Properties, err = parseProperties(pv); err != nil {
			return nil, err
		}
	case hasProps:
		return nil, fmt.Errorf("%w: properties is applicable only for object type schema", ErrSchema)
	}
	if rv, err := v.Get("required"); err == nil {
		if !s.Types.Has(ObjectType) {
			return nil, fmt.Errorf("%w: required is applicable only for object type schema", ErrSchema)
		}
		if s.Required, err = parseRequired(rv, s.Properties); err != nil {
			return nil, err
		}
	}
	if debug.Schema() {
		debug.Logf("schema %q: types %s, %d properties, required %v\n", s.ID, &s.Types, len(s.Properties), s.Required)
	}
	return s, nil
}

// Empty reports whether the schema lacks a usable top level type.
func (s *Schema) Empty() bool {
	return !s.Types.OnlyContainers()
}

// Property returns the top level property called name, or nil.
func (s *Schema) Property(name string) *Property {
	return findProperty(s.Properties, name)
}

func (s *Schema) ToValue() (*ir.Value, error) {
	res := ir.NewObject()
	for _, kw := range []struct {
		key string
		val string
	}{
		{"$schema", s.Schema},
		{"$id", s.ID},
		{"title", s.Title},
		{"description", s.Description},
	} {
		if kw.val != "" {
			res.Set(kw.key, ir.FromString(kw.val))
		}
	}
	tv, err := s.Types.ToValue()
	if err != nil {
		return nil, fmt.Errorf("%w: schema %w", ErrSchema, err)
	}
	res.Set("type", tv)
	if len(s.Properties) != 0 {
		pv, err := propertiesValue(s.Properties)
		if err != nil {
			return nil, err
		}
		res.Set("properties", pv)
	}
	if len(s.Required) != 0 {
		res.Set("required", requiredValue(s.Required))
	}
	return res, nil
}

// String renders the schema as pretty JSON.
func (s *Schema) String() string {
	v, err := s.ToValue()
	if err != nil {
		return err.Error()
	}
	str, err := encode.String(v, encode.EncodeType(format.Pretty))
	if err != nil {
		return err.Error()
	}
	return str
}
