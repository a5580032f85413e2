package token

// Mapping is a read-only view of a file's contents, memory mapped where
// the platform supports it. The bytes are valid until Close.
type Mapping struct {
	data   []byte
	mapped bool
}

func (m *Mapping) Bytes() []byte {
	return m.data
}

// Mapped reports whether the contents are memory mapped rather than
// read into memory.
func (m *Mapping) Mapped() bool {
	return m.mapped
}
