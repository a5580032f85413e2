package libdiff

import (
	"github.com/signadot/rjson/ir"
)

const (
	FromKey  = "-"
	ToKey    = "+"
	PatchKey = "~"
)

type DiffFunc func(from, to *ir.Value) *ir.Value

// Diff returns nil when from and to are equal.
func Diff(from, to *ir.Value) *ir.Value {
	if ir.Equal(from, to) {
		return nil
	}
	switch {
	case from.IsObject() && to.IsObject():
		return DiffObject(from, to, Diff)
	case from.IsArray() && to.IsArray():
		return DiffArray(from, to, Diff)
	case from.IsString() && to.IsString():
		return DiffString(from, to)
	}
	return MakeDiff(from, to)
}

// MakeDiff records a whole value change. Either side may be nil.
func MakeDiff(from, to *ir.Value) *ir.Value {
	var kvs []ir.KeyVal
	if from != nil {
		kvs = append(kvs, ir.KeyVal{Key: FromKey, Value: from.Clone()})
	}
	if to != nil {
		kvs = append(kvs, ir.KeyVal{Key: ToKey, Value: to.Clone()})
	}
	return ir.FromKeyVals(kvs)
}
