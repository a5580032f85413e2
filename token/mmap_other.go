//go:build !unix

package token

import (
	"os"
)

// MapFile reads the file at path into memory; memory mapping is only
// implemented on unix.
func MapFile(path string) (*Mapping, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: d}, nil
}

func (m *Mapping) Close() error {
	m.data = nil
	return nil
}
