package encode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/ir"
)

var (
	ErrNotContainer = errors.New("root must be an object or an array")
	ErrUnencodable  = errors.New("unencodable value")
)

type EncState struct {
	format  format.Format
	newline bool
	pad     string

	Color func(ir.Type, ColorAttr, string) string
}

func init() {
	debug.Renderer = func(v *ir.Value) (string, error) {
		return String(v, EncodeType(format.Pretty))
	}
}

// Encode writes v, which must be an object or an array, to w.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: format.Default()}
	for _, opt := range opts {
		opt(es)
	}
	if err := es.format.Validate(); err != nil {
		return err
	}
	if !v.IsContainer() {
		return fmt.Errorf("%w: got %s", ErrNotContainer, v.Type())
	}
	if es.format.IsPretty() && es.format.Padding != 0 {
		es.pad = strings.Repeat(string(es.format.Padding), int(es.format.Indent))
	}
	if debug.Encode() {
		debug.Logf("encode: %s root with %s\n", v.Type(), es.format)
	}
	bw := bufio.NewWriter(w)
	if err := encode(v, bw, es, 0); err != nil {
		return err
	}
	if es.newline {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func encode(v *ir.Value, w *bufio.Writer, es *EncState, level int) error {
	switch v.Type() {
	case ir.ObjectType:
		return encodeObject(v, w, es, level)
	case ir.ArrayType:
		return encodeArray(v, w, es, level)
	case ir.NullType:
		return writeColored(w, es, ir.NullType, ValueColor, "null")
	case ir.BoolType:
		s, _ := v.AsStr()
		return writeColored(w, es, ir.BoolType, ValueColor, s)
	case ir.SignedType, ir.UnsignedType, ir.DoubleType:
		if f, err := v.Float64(); err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return fmt.Errorf("%w: %v", ErrUnencodable, f)
		}
		s, _ := v.AsStr()
		return writeColored(w, es, v.Type(), ValueColor, s)
	case ir.StringType:
		s, _ := v.Str()
		return writeColored(w, es, ir.StringType, ValueColor, stringText(s, es.format.StringNoQuotes))
	default:
		return fmt.Errorf("%w: unknown type %s", ErrUnencodable, v.Type())
	}
}

func encodeObject(v *ir.Value, w *bufio.Writer, es *EncState, level int) error {
	n, _ := v.Len()
	if n == 0 {
		return writeColored(w, es, ir.ObjectType, SepColor, "{}")
	}
	if err := writeColored(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	kvSep := ":"
	if es.format.IsPretty() {
		kvSep = " : "
	}
	i := 0
	for k, e := range v.Fields() {
		if err := writeSep(w, es, ir.ObjectType, i, level+1); err != nil {
			return err
		}
		if err := writeColored(w, es, ir.ObjectType, FieldColor, keyText(k, es.format.KeyNoQuotes)); err != nil {
			return err
		}
		if err := writeColored(w, es, ir.ObjectType, SepColor, kvSep); err != nil {
			return err
		}
		if err := encode(e, w, es, level+1); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		i++
	}
	if err := writeClose(w, es, level); err != nil {
		return err
	}
	return writeColored(w, es, ir.ObjectType, SepColor, "}")
}

func encodeArray(v *ir.Value, w *bufio.Writer, es *EncState, level int) error {
	n, _ := v.Len()
	if n == 0 {
		return writeColored(w, es, ir.ArrayType, SepColor, "[]")
	}
	if err := writeColored(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	for i, e := range v.Elements() {
		if err := writeSep(w, es, ir.ArrayType, i, level+1); err != nil {
			return err
		}
		if err := encode(e, w, es, level+1); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	if err := writeClose(w, es, level); err != nil {
		return err
	}
	return writeColored(w, es, ir.ArrayType, SepColor, "]")
}

// writeSep writes what precedes the i'th entry of a container.
func writeSep(w *bufio.Writer, es *EncState, t ir.Type, i, level int) error {
	if i > 0 {
		if err := writeColored(w, es, t, SepColor, ","); err != nil {
			return err
		}
	}
	if !es.format.IsPretty() {
		return nil
	}
	return writeNL(w, es, level)
}

func writeClose(w *bufio.Writer, es *EncState, level int) error {
	if !es.format.IsPretty() {
		return nil
	}
	return writeNL(w, es, level)
}

func writeNL(w *bufio.Writer, es *EncState, level int) error {
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	for range level {
		if _, err := w.WriteString(es.pad); err != nil {
			return err
		}
	}
	return nil
}

func writeColored(w *bufio.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	_, err := w.WriteString(s)
	return err
}
