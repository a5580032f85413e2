package libdiff

import (
	"github.com/signadot/rjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffObject aligns the key sequences of from and to. Keys only in
// from are deletes, keys only in to are inserts, and shared keys
// recurse with df. Key order alone is not a difference.
func DiffObject(from, to *ir.Value, df DiffFunc) *ir.Value {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []ir.KeyVal
	seen := map[string]int{}
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			k := runeMap[r]
			f, _ := from.Get(k)
			t, _ := to.Get(k)
			var d *ir.Value
			switch diff.Type {
			case diffpatch.DiffDelete:
				d = MakeDiff(f, nil)
			case diffpatch.DiffInsert:
				d = MakeDiff(nil, t)
			case diffpatch.DiffEqual:
				d = df(f, t)
			}
			if j, ok := seen[k]; ok {
				// moved: deleted at one place, inserted at another
				res[j].Value = df(f, t)
				continue
			}
			if d == nil {
				continue
			}
			seen[k] = len(res)
			res = append(res, ir.KeyVal{Key: k, Value: d})
		}
	}
	kvs := res[:0]
	for _, kv := range res {
		if kv.Value != nil {
			kvs = append(kvs, kv)
		}
	}
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}

func mapFieldsTo(m map[string]rune, im map[rune]string, v *ir.Value) []rune {
	n, _ := v.Len()
	rs := make([]rune, 0, n)
	for f := range v.Fields() {
		r, ok := m[f]
		if !ok {
			r = indexRune(len(m))
			m[f] = r
			im[r] = f
		}
		rs = append(rs, r)
	}
	return rs
}

// indexRune maps i to a rune that survives conversion to a string,
// skipping the surrogate range.
func indexRune(i int) rune {
	if i >= 0xD800 {
		i += 0x800
	}
	return rune(i)
}
