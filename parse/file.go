package parse

import "fmt"

// FileStrategy selects how ParseFile reads a file.
type FileStrategy int

const (
	// Mmap maps the file into memory.
	Mmap FileStrategy = iota
	// ReadAll reads the whole file before parsing.
	ReadAll
	// Buffered streams the file through a buffer.
	Buffered
	// Seek streams the file and seeks back when backtracking.
	Seek
)

var fileStrategies = map[string]FileStrategy{
	"mmap":    Mmap,
	"data":    ReadAll,
	"readall": ReadAll,
	"stream":  Buffered,
	"buffer":  Buffered,
	"seek":    Seek,
}

func ParseFileStrategy(v string) (FileStrategy, error) {
	s, ok := fileStrategies[v]
	if ok {
		return s, nil
	}
	return Mmap, fmt.Errorf("%w: unknown file strategy %q", ErrBadControl, v)
}

func (s FileStrategy) String() string {
	switch s {
	case Mmap:
		return "mmap"
	case ReadAll:
		return "data"
	case Buffered:
		return "stream"
	case Seek:
		return "seek"
	default:
		return fmt.Sprintf("<err: %d is not a file strategy>", int(s))
	}
}
