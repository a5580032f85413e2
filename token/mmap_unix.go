//go:build unix

package token

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapFile maps the file at path read-only. An empty file yields an
// empty Mapping, as mapping zero bytes is an error on unix.
func MapFile(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size64 := st.Size()
	if size64 == 0 {
		return &Mapping{}, nil
	}
	size := int(size64)
	if int64(size) != size64 {
		return nil, fmt.Errorf("%s: file too large", path)
	}
	rawConn, err := f.SyscallConn()
	if err != nil {
		return nil, err
	}
	var data []byte
	if cerr := rawConn.Control(func(fd uintptr) {
		data, err = unix.Mmap(int(fd), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	}); cerr != nil {
		return nil, cerr
	}
	if err != nil {
		if errors.Is(err, unix.ENODEV) {
			// not a mappable file, e.g. a pipe or a procfs entry
			return readMapping(f, size)
		}
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &Mapping{data: data, mapped: true}, nil
}

func (m *Mapping) Close() error {
	if !m.mapped {
		m.data = nil
		return nil
	}
	m.mapped = false
	err := unix.Munmap(m.data)
	m.data = nil
	return err
}
