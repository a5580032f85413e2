package debug

import (
	"fmt"
	"os"

	"github.com/signadot/rjson/ir"
)

// Renderer renders values for Logf. The encode package installs itself
// here so that this package stays importable from the parser.
var Renderer func(*ir.Value) (string, error)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ir.Value:
			if Renderer == nil || !x.IsContainer() {
				s, err := x.AsStr()
				if err != nil {
					s = x.Type().String()
				}
				args[i] = s
				continue
			}
			s, err := Renderer(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Value] %v", x.ToAny())
				continue
			}
			args[i] = s
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
