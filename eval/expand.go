package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
)

// Expand evaluates $[expr] references in the strings of v, in place,
// against root. A string that is exactly one reference is replaced by the
// result value; otherwise each result is spliced into the string. Inside
// a reference, a backslash escapes the following byte.
func Expand(v, root *ir.Value, env Env) error {
	switch v.Type() {
	case ir.ObjectType:
		for k, e := range v.Fields() {
			if err := Expand(e, root, env); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
		}
	case ir.ArrayType:
		for i, e := range v.Elements() {
			if err := Expand(e, root, env); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
	case ir.StringType:
		s, _ := v.Str()
		if src, ok := wholeRef(s); ok {
			res, err := evalRef(src, root, env)
			if err != nil {
				return err
			}
			v.Assign(res)
			return nil
		}
		res, err := ExpandString(s, root, env)
		if err != nil {
			return err
		}
		v.SetString(res)
	}
	return nil
}

// ExpandString splices the results of the $[expr] references in s.
// String results are inserted as is, other results as compact JSON.
func ExpandString(s string, root *ir.Value, env Env) (string, error) {
	if !strings.Contains(s, "$[") {
		return s, nil
	}
	out := &strings.Builder{}
	for {
		i := strings.Index(s, "$[")
		if i < 0 {
			out.WriteString(s)
			return out.String(), nil
		}
		out.WriteString(s[:i])
		src, n, ok := scanRef(s[i+2:])
		if !ok {
			return "", fmt.Errorf("%w: unterminated $[ in %q", ErrEval, s)
		}
		res, err := evalRef(src, root, env)
		if err != nil {
			return "", err
		}
		if res.IsString() {
			str, _ := res.Str()
			out.WriteString(str)
		} else if err := writeValue(out, res); err != nil {
			return "", err
		}
		s = s[i+2+n:]
	}
}

// scanRef reads an expression up to its closing bracket, returning the
// unescaped expression and the number of bytes consumed.
func scanRef(s string) (string, int, bool) {
	sb := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			if i+1 < len(s) {
				i++
				sb.WriteByte(s[i])
			}
		case ']':
			return strings.TrimSpace(sb.String()), i + 1, true
		default:
			sb.WriteByte(c)
		}
	}
	return "", 0, false
}

func wholeRef(s string) (string, bool) {
	if !strings.HasPrefix(s, "$[") {
		return "", false
	}
	src, n, ok := scanRef(s[2:])
	if !ok || 2+n != len(s) {
		return "", false
	}
	return src, true
}

func evalRef(src string, root *ir.Value, env Env) (*ir.Value, error) {
	p, err := Compile(src, root)
	if err != nil {
		return nil, err
	}
	return p.Run(env)
}

func writeValue(sb *strings.Builder, v *ir.Value) error {
	switch {
	case v.IsContainer():
		return encode.Encode(v, sb)
	case v.IsNull():
		sb.WriteString("null")
		return nil
	}
	s, err := v.AsStr()
	if err != nil {
		return err
	}
	sb.WriteString(s)
	return nil
}
