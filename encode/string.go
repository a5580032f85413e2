package encode

import (
	"strings"

	"github.com/signadot/rjson/ir"
)

func String(v *ir.Value, opts ...EncodeOption) (string, error) {
	sb := &strings.Builder{}
	if err := Encode(v, sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func MustString(v *ir.Value, opts ...EncodeOption) string {
	s, err := String(v, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(s)
}
