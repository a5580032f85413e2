// Package token provides the byte cursors the parser reads from and
// the position bookkeeping used in parse errors.
//
// Three cursors are provided: [NewBytesCursor] over an in-memory range
// (strings and memory mapped files, see [MapFile]), [NewSeekCursor]
// over an [io.ReadSeeker] and [NewReaderCursor] over any [io.Reader].
// They differ only in how they support backtracking.
package token
