package libdiff

import (
	"fmt"

	"github.com/signadot/rjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString is MakeDiff plus the patch text turning from into to.
func DiffString(from, to *ir.Value) *ir.Value {
	fs, _ := from.Str()
	ts, _ := to.Str()
	if fs == ts {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(fs, ts, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	patches := dmp.PatchMake(fs, diffs)
	res := MakeDiff(from, to)
	res.Set(PatchKey, ir.FromString(dmp.PatchToText(patches)))
	return res
}

// ApplyString applies the patch text of a string diff to s.
func ApplyString(s, patchText string) (string, error) {
	dmp := diffpatch.New()
	patches, err := dmp.PatchFromText(patchText)
	if err != nil {
		return "", err
	}
	res, applied := dmp.PatchApply(patches, s)
	for i, ok := range applied {
		if !ok {
			return "", &PatchError{Index: i}
		}
	}
	return res, nil
}

type PatchError struct {
	Index int
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("string patch hunk %d did not apply", e.Index)
}
