package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"
)

var (
	ErrPatch   = errors.New("patch error")
	ErrNotRoot = errors.New("patched document is not an object or an array")
)

// Decode reads an RFC 6902 operation list.
func Decode(ops *ir.Value) (jsonpatch.Patch, error) {
	if !ops.IsArray() {
		return nil, fmt.Errorf("%w: operations must be an array, got %s", ErrPatch, ops.Type())
	}
	d, err := encode.String(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	p, err := jsonpatch.DecodePatch([]byte(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return p, nil
}

// Apply applies the RFC 6902 operations in ops to doc and returns the
// result; doc is not modified. opts configure reading the result back.
func Apply(doc, ops *ir.Value, opts ...parse.ParseOption) (*ir.Value, error) {
	p, err := Decode(ops)
	if err != nil {
		return nil, err
	}
	n, _ := ops.Len()
	if debug.Eval() {
		debug.Logf("patch: applying %d operations\n", n)
	}
	return run(doc, func(d []byte) ([]byte, error) { return p.Apply(d) }, opts)
}

// Merge applies an RFC 7386 merge patch to doc.
func Merge(doc, mergePatch *ir.Value, opts ...parse.ParseOption) (*ir.Value, error) {
	mp, err := encode.String(mergePatch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return run(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, []byte(mp))
	}, opts)
}

// CreateMerge returns the merge patch turning from into to.
func CreateMerge(from, to *ir.Value, opts ...parse.ParseOption) (*ir.Value, error) {
	f, err := encode.String(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	t, err := encode.String(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := jsonpatch.CreateMergePatch([]byte(f), []byte(t))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(d, opts...)
}

func run(doc *ir.Value, f func([]byte) ([]byte, error), opts []parse.ParseOption) (*ir.Value, error) {
	d, err := encode.String(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := f([]byte(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out, opts...)
	if err != nil {
		if errors.Is(err, parse.ErrParse) && len(out) > 0 && out[0] != '{' && out[0] != '[' {
			return nil, fmt.Errorf("%w: %s", ErrNotRoot, out)
		}
		return nil, err
	}
	return res, nil
}
