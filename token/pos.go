package token

import "fmt"

// Pos locates a byte in the input. Line and Col are 1 based.
type Pos struct {
	Offset int64
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("@line:%d, @pos:%d", p.Line, p.Col)
}

// Lines tracks the current line number and the offset at which that line
// begins. It is a value type: copying it saves the position state.
type Lines struct {
	line  int
	begin int64
}

func NewLines() Lines {
	return Lines{line: 1}
}

// Newline records a '\n' consumed at offset off.
func (l *Lines) Newline(off int64) {
	l.line++
	l.begin = off + 1
}

func (l *Lines) Line() int {
	return l.line
}

// Pos returns the position of offset off, which must not precede the
// start of the current line.
func (l *Lines) Pos(off int64) Pos {
	return Pos{
		Offset: off,
		Line:   l.line,
		Col:    int(off-l.begin) + 1,
	}
}
