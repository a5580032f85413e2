package encode

import "github.com/signadot/rjson/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeType selects compact or pretty output with default indentation.
func EncodeType(t format.Type) EncodeOption {
	return func(es *EncState) { es.format = format.Of(t) }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

func EncodeNewline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{format: format.Default()}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
