package schema

import (
	"fmt"
	"math"
	"slices"

	"github.com/signadot/rjson/ir"
)

// Property describes one named entry of an object schema.
type Property struct {
	Name        string
	Description string
	Types       Types

	// numbers
	Minimum          *int64
	ExclusiveMinimum *int64
	Maximum          *int64
	ExclusiveMaximum *int64
	MultipleOf       *int64

	// strings
	MinLength *uint64
	MaxLength *uint64
	Pattern   *string

	// arrays
	MinItems    *uint64
	MaxItems    *uint64
	UniqueItems *bool
	MinContains *uint64
	MaxContains *uint64

	// objects
	MinProperties *uint64
	MaxProperties *uint64
	Properties    []*Property
	Required      []string
}

// facet is a type specific keyword of a property.
type facet struct {
	key   string
	group Type
	read  func(*Property, *ir.Value) error
	write func(*Property) *ir.Value
}

var facets = []facet{
	int64Facet("minimum", func(p *Property) **int64 { return &p.Minimum }),
	int64Facet("exclusiveMinimum", func(p *Property) **int64 { return &p.ExclusiveMinimum }),
	int64Facet("maximum", func(p *Property) **int64 { return &p.Maximum }),
	int64Facet("exclusiveMaximum", func(p *Property) **int64 { return &p.ExclusiveMaximum }),
	int64Facet("multipleOf", func(p *Property) **int64 { return &p.MultipleOf }),

	uint64Facet("minLength", StringType, func(p *Property) **uint64 { return &p.MinLength }),
	uint64Facet("maxLength", StringType, func(p *Property) **uint64 { return &p.MaxLength }),
	{
		key:   "pattern",
		group: StringType,
		read: func(p *Property, v *ir.Value) error {
			s, err := v.Str()
			if err != nil {
				return fmt.Errorf("%w: pattern must be a string: %w", ErrSchema, err)
			}
			p.Pattern = &s
			return nil
		},
		write: func(p *Property) *ir.Value {
			if p.Pattern == nil {
				return nil
			}
			return ir.FromString(*p.Pattern)
		},
	},

	uint64Facet("minItems", ArrayType, func(p *Property) **uint64 { return &p.MinItems }),
	uint64Facet("maxItems", ArrayType, func(p *Property) **uint64 { return &p.MaxItems }),
	{
		key:   "uniqueItems",
		group: ArrayType,
		read: func(p *Property, v *ir.Value) error {
			b, err := v.Bool()
			if err != nil {
				return fmt.Errorf("%w: uniqueItems must be a boolean: %w", ErrSchema, err)
			}
			p.UniqueItems = &b
			return nil
		},
		write: func(p *Property) *ir.Value {
			if p.UniqueItems == nil {
				return nil
			}
			return ir.FromBool(*p.UniqueItems)
		},
	},
	uint64Facet("minContains", ArrayType, func(p *Property) **uint64 { return &p.MinContains }),
	uint64Facet("maxContains", ArrayType, func(p *Property) **uint64 { return &p.MaxContains }),

	uint64Facet("minProperties", ObjectType, func(p *Property) **uint64 { return &p.MinProperties }),
	uint64Facet("maxProperties", ObjectType, func(p *Property) **uint64 { return &p.MaxProperties }),
}

// int64Facet is a numeric facet; it applies to number and integer.
func int64Facet(key string, field func(*Property) **int64) facet {
	return facet{
		key:   key,
		group: NumberType,
		read: func(p *Property, v *ir.Value) error {
			i, err := readInt64(v)
			if err != nil {
				return fmt.Errorf("%w: %s must be an integer: %w", ErrSchema, key, err)
			}
			*field(p) = &i
			return nil
		},
		write: func(p *Property) *ir.Value {
			if x := *field(p); x != nil {
				return ir.FromInt(*x)
			}
			return nil
		},
	}
}

// readInt64 reads any integer, signed or unsigned, that fits an int64.
func readInt64(v *ir.Value) (int64, error) {
	if !v.IsUnsigned() {
		return v.Int64()
	}
	u, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d", ir.ErrOutOfRange, u)
	}
	return int64(u), nil
}

func uint64Facet(key string, group Type, field func(*Property) **uint64) facet {
	return facet{
		key:   key,
		group: group,
		read: func(p *Property, v *ir.Value) error {
			u, err := v.Uint64()
			if err != nil {
				return fmt.Errorf("%w: %s must be an unsigned integer: %w", ErrSchema, key, err)
			}
			*field(p) = &u
			return nil
		},
		write: func(p *Property) *ir.Value {
			if x := *field(p); x != nil {
				return ir.FromUint(*x)
			}
			return nil
		},
	}
}

func (p *Property) allows(group Type) bool {
	if group == NumberType {
		return p.Types.HasNumeric()
	}
	return p.Types.Has(group)
}

func parseProperty(name string, v *ir.Value) (*Property, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: property must be an object, got %s", ErrSchema, v.Type())
	}
	p := &Property{Name: name}
	tv, err := v.Get("type")
	if err != nil {
		return nil, fmt.Errorf("%w: property type missing", ErrSchema)
	}
	if err := p.Types.AddValue(tv); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if p.Description, err = optString(v, "description"); err != nil {
		return nil, err
	}
	for _, f := range facets {
		fv, err := v.Get(f.key)
		if err != nil {
			continue
		}
		if !p.allows(f.group) {
			return nil, fmt.Errorf("%w: %s is applicable only for %s types", ErrSchema, f.key, f.group)
		}
		if err := f.read(p, fv); err != nil {
			return nil, err
		}
	}
	if pv, err := v.Get("properties"); err == nil {
		if !p.Types.Has(ObjectType) {
			return nil, fmt.Errorf("%w: properties is applicable only for object types", ErrSchema)
		}
		if p.Properties, err = parseProperties(pv); err != nil {
			return nil, err
		}
	}
	if rv, err := v.Get("required"); err == nil {
		if !p.Types.Has(ObjectType) {
			return nil, fmt.Errorf("%w: required is applicable only for object types", ErrSchema)
		}
		if p.Required, err = parseRequired(rv, p.Properties); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func parseProperties(v *ir.Value) ([]*Property, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: properties must be an object", ErrSchema)
	}
	var res []*Property
	for k, e := range v.Fields() {
		p, err := parseProperty(k, e)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		res = append(res, p)
	}
	return res, nil
}

// parseRequired reads a required list; each name must be one of props.
// The result is sorted without duplicates.
func parseRequired(v *ir.Value, props []*Property) ([]string, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: required must be an array of strings", ErrSchema)
	}
	var res []string
	for i, e := range v.Elements() {
		key, err := e.Str()
		if err != nil {
			return nil, fmt.Errorf("%w: required entry %d must be a string", ErrSchema, i)
		}
		if findProperty(props, key) == nil {
			return nil, fmt.Errorf("%w: key (%s) marked as required is not found in properties", ErrSchema, key)
		}
		res = append(res, key)
	}
	slices.Sort(res)
	return slices.Compact(res), nil
}

func findProperty(props []*Property, name string) *Property {
	for _, p := range props {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// optString reads an optional string keyword; null counts as absent.
func optString(v *ir.Value, key string) (string, error) {
	e, err := v.Get(key)
	if err != nil || e.IsNull() {
		return "", nil
	}
	s, err := e.Str()
	if err != nil {
		return "", fmt.Errorf("%w: %s must be a string: %w", ErrSchema, key, err)
	}
	return s, nil
}

// Property returns the nested property called name, or nil.
func (p *Property) Property(name string) *Property {
	return findProperty(p.Properties, name)
}

func (p *Property) ToValue() (*ir.Value, error) {
	res := ir.NewObject()
	if p.Description != "" {
		res.Set("description", ir.FromString(p.Description))
	}
	tv, err := p.Types.ToValue()
	if err != nil {
		return nil, fmt.Errorf("%w: property %q: %w", ErrSchema, p.Name, err)
	}
	res.Set("type", tv)
	for _, f := range facets {
		if !p.allows(f.group) {
			continue
		}
		if fv := f.write(p); fv != nil {
			res.Set(f.key, fv)
		}
	}
	if p.Types.Has(ObjectType) {
		if len(p.Properties) != 0 {
			pv, err := propertiesValue(p.Properties)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", p.Name, err)
			}
			res.Set("properties", pv)
		}
		if len(p.Required) != 0 {
			res.Set("required", requiredValue(p.Required))
		}
	}
	return res, nil
}

func propertiesValue(props []*Property) (*ir.Value, error) {
	res := ir.NewObject()
	for _, p := range props {
		pv, err := p.ToValue()
		if err != nil {
			return nil, err
		}
		res.Set(p.Name, pv)
	}
	return res, nil
}

func requiredValue(req []string) *ir.Value {
	res := ir.NewArray()
	for _, r := range req {
		res.Push(ir.FromString(r))
	}
	return res
}
