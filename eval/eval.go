package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	gojson "github.com/goccy/go-json"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"
)

var ErrEval = errors.New("eval error")

// Env holds the variables visible to an expression.
type Env map[string]any

// DocEnv makes the environment for doc: every field of an object root
// plus doc, which is the whole document.
func DocEnv(doc *ir.Value) Env {
	env := Env{}
	root := doc.ToAny()
	if m, ok := root.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["doc"] = root
	return env
}

type Program struct {
	src string
	doc *ir.Value
	prg *vm.Program
}

// Compile compiles src for evaluation against doc. The functions
// getpath, typeof and getenv are available in addition to the expr
// builtins.
func Compile(src string, doc *ir.Value) (*Program, error) {
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	return &Program{src: src, doc: doc, prg: prg}, nil
}

// Run evaluates the program in env and converts the result to a Value.
func (p *Program) Run(env Env) (*ir.Value, error) {
	x, err := vm.Run(p.prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, p.src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", p.src, x)
	}
	return FromAny(x)
}

// Eval evaluates src against doc.
func Eval(src string, doc *ir.Value) (*ir.Value, error) {
	p, err := Compile(src, doc)
	if err != nil {
		return nil, err
	}
	return p.Run(DocEnv(doc))
}

// FromAny converts an expression result to a Value, falling back to a
// JSON round trip for types ir.FromAny does not know, such as structs.
func FromAny(x any) (*ir.Value, error) {
	if v, err := ir.FromAny(x); err == nil {
		return v, nil
	}
	d, err := gojson.Marshal([]any{x})
	if err != nil {
		return nil, fmt.Errorf("%w: result of type %T: %w", ErrEval, x, err)
	}
	arr, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%w: result of type %T: %w", ErrEval, x, err)
	}
	return arr.At(0)
}

func exprOpts(doc *ir.Value) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			v, err := doc.GetPointer(params[0].(string))
			if err != nil {
				return nil, err
			}
			return v.ToAny(), nil
		},
			new(func(string) any)),
		expr.Function("typeof", func(params ...any) (any, error) {
			v, err := FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return v.Type().String(), nil
		},
			new(func(any) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
