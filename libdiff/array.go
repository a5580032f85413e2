package libdiff

import (
	"strconv"

	"github.com/signadot/rjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArray aligns the elements of from and to by a summary of each
// element: containers by type, scalars by type and value. Aligned
// elements recurse with df. The result is keyed by position in the
// merged sequence, and a delete directly followed by an insert becomes
// a replacement at the same position.
func DiffArray(from, to *ir.Value, df DiffFunc) *ir.Value {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []ir.KeyVal
	fi, ti, ri := 0, 0, 0
	delIndex := -1
	for i := range diffs {
		diff := &diffs[i]
		for range []rune(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffDelete:
				f, _ := from.At(fi)
				res = append(res, ir.KeyVal{Key: strconv.Itoa(ri), Value: MakeDiff(f, nil)})
				delIndex = ri
				ri++
				fi++
			case diffpatch.DiffEqual:
				delIndex = -1
				f, _ := from.At(fi)
				t, _ := to.At(ti)
				if d := df(f, t); d != nil {
					res = append(res, ir.KeyVal{Key: strconv.Itoa(ri), Value: d})
				}
				ri++
				fi++
				ti++
			case diffpatch.DiffInsert:
				t, _ := to.At(ti)
				if delIndex >= 0 && delIndex == ri-1 {
					last := &res[len(res)-1]
					f, _ := last.Value.Get(FromKey)
					last.Value = replace(f, t)
				} else {
					res = append(res, ir.KeyVal{Key: strconv.Itoa(ri), Value: MakeDiff(nil, t)})
					ri++
				}
				ti++
				delIndex = -1
			}
		}
	}
	if len(res) == 0 {
		return nil
	}
	return ir.FromKeyVals(res)
}

// replace is MakeDiff for two values, with string patch text.
func replace(from, to *ir.Value) *ir.Value {
	if from.IsString() && to.IsString() {
		return DiffString(from, to)
	}
	return MakeDiff(from, to)
}

func mapValues(m map[string]rune, v *ir.Value) []rune {
	n, _ := v.Len()
	rs := make([]rune, 0, n)
	for _, e := range v.Elements() {
		sum := summaryStr(e)
		r, ok := m[sum]
		if !ok {
			r = indexRune(len(m))
			m[sum] = r
		}
		rs = append(rs, r)
	}
	return rs
}

func summaryStr(v *ir.Value) string {
	switch v.Type() {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return v.Type().String()
	default:
		s, _ := v.AsStr()
		return v.Type().String() + "-" + s
	}
}
