package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Type selects between single line and indented output.
type Type int

const (
	Compact Type = iota
	Pretty
)

var ErrBadFormat = errors.New("bad format")

func ParseType(v string) (Type, error) {
	t, ok := map[string]Type{
		"compact": Compact,
		"c":       Compact,
		"pretty":  Pretty,
		"p":       Pretty,
	}[v]
	if ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (t Type) String() string {
	d, err := t.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case Compact:
		return []byte("compact"), nil
	case Pretty:
		return []byte("pretty"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format type>", t)
	}
}

func (t *Type) UnmarshalText(d []byte) error {
	pt, err := ParseType(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

// Format configures the writer.
type Format struct {
	Type Type
	// Indent is the number of Padding bytes per nesting level in
	// pretty output.
	Indent uint
	// Padding must be whitespace, or NUL for no padding at all.
	Padding byte
	// KeyNoQuotes writes object keys without quotes where the relaxed
	// grammar can read them back.
	KeyNoQuotes bool
	// StringNoQuotes does the same for string values.
	StringNoQuotes bool
}

const (
	DefaultIndent  = 2
	DefaultPadding = ' '
)

// Default returns compact strict JSON output.
func Default() Format {
	return Format{Type: Compact, Indent: DefaultIndent, Padding: DefaultPadding}
}

// Of returns the default Format of type t.
func Of(t Type) Format {
	f := Default()
	f.Type = t
	return f
}

func (f Format) IsPretty() bool  { return f.Type == Pretty }
func (f Format) IsCompact() bool { return f.Type == Compact }

// Validate checks the padding byte.
func (f Format) Validate() error {
	switch f.Padding {
	case 0, ' ', '\t', '\n', '\v', '\f', '\r':
		return nil
	}
	return fmt.Errorf("%w: padding %q is not whitespace", ErrBadFormat, f.Padding)
}

// Parse reads a format description such as
//
//	compact
//	xcompact:string-no-quotes
//	pretty:sep=tab:indent=1
//	xpretty:key-no-quotes=false:indent=4
//
// The x prefixed types turn on KeyNoQuotes. sep accepts space, s, tab, t
// none, or a single whitespace byte; sep and indent only apply to
// pretty.
func Parse(v string) (Format, error) {
	f := Default()
	typ, rest, _ := strings.Cut(v, ":")
	switch typ {
	case "compact":
	case "xcompact":
		f.KeyNoQuotes = true
	case "pretty":
		f.Type = Pretty
	case "xpretty":
		f.Type = Pretty
		f.KeyNoQuotes = true
	default:
		return f, fmt.Errorf("%w: unknown type %q in %q", ErrBadFormat, typ, v)
	}
	if rest == "" {
		return f, nil
	}
	for _, opt := range strings.Split(rest, ":") {
		if opt == "" {
			continue
		}
		key, val, hasVal := strings.Cut(opt, "=")
		switch key {
		case "key-no-quotes", "string-no-quotes":
			b := true
			if hasVal {
				var err error
				b, err = strconv.ParseBool(val)
				if err != nil {
					return f, fmt.Errorf("%w: %s: %q is not a boolean", ErrBadFormat, key, val)
				}
			}
			if key == "key-no-quotes" {
				f.KeyNoQuotes = b
			} else {
				f.StringNoQuotes = b
			}
		case "sep", "separator":
			if f.Type != Pretty {
				return f, fmt.Errorf("%w: %s applies only to pretty", ErrBadFormat, key)
			}
			switch val {
			case "none":
				f.Padding = 0
				continue
			case "", "s", "space":
				val = " "
			case "t", "tab":
				val = "\t"
			}
			if len(val) != 1 || val[0] == 0 {
				return f, fmt.Errorf("%w: separator %q must be a single whitespace byte", ErrBadFormat, val)
			}
			f.Padding = val[0]
			if err := f.Validate(); err != nil {
				return f, err
			}
		case "indent":
			if f.Type != Pretty {
				return f, fmt.Errorf("%w: indent applies only to pretty", ErrBadFormat)
			}
			if !hasVal {
				return f, fmt.Errorf("%w: indent requires a value", ErrBadFormat)
			}
			n, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				return f, fmt.Errorf("%w: indent %q: %w", ErrBadFormat, val, err)
			}
			f.Indent = uint(n)
		default:
			return f, fmt.Errorf("%w: unknown parameter %q", ErrBadFormat, key)
		}
	}
	return f, nil
}

// String renders f in the form Parse reads.
func (f Format) String() string {
	b := &strings.Builder{}
	b.WriteString(f.Type.String())
	if f.Type == Pretty {
		switch f.Padding {
		case ' ':
			b.WriteString(":sep=space")
		case '\t':
			b.WriteString(":sep=tab")
		case 0:
			b.WriteString(":sep=none")
		default:
			b.WriteString(":sep=")
			b.WriteByte(f.Padding)
		}
		fmt.Fprintf(b, ":indent=%d", f.Indent)
	}
	if f.KeyNoQuotes {
		b.WriteString(":key-no-quotes=true")
	}
	if f.StringNoQuotes {
		b.WriteString(":string-no-quotes=true")
	}
	return b.String()
}

func (f Format) MarshalText() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := Parse(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
