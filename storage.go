package digitring

import (
	"os"
	"strings"
)

// FileSystem abstracts the named resources rings are loaded from and saved
// to, so callers can substitute in-memory or remote backends.
type FileSystem interface {
	// ReadFile returns the full content of a named resource.
	ReadFile(name string) ([]byte, error)

	// WriteFile durably stores data at a named resource, replacing any
	// previous content.
	WriteFile(name string, data []byte) error
}

// LocalFileSystem implements FileSystem over the local disk.
type LocalFileSystem struct{}

// ReadFile returns the full content of a file on disk.
func (LocalFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile stores data at a path on disk, replacing any previous content.
func (LocalFileSystem) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0644)
}

// Load builds a ring from the first line of a named resource, trimmed of
// surrounding whitespace. Any read failure yields an empty ring rather
// than an error: a missing or unreadable source means "no number", and
// callers detect it by checking emptiness.
func Load(fs FileSystem, name string) *Ring {
	data, err := fs.ReadFile(name)
	if err != nil {
		return New()
	}
	return Parse(firstLine(data))
}

// Save writes the ring's decimal rendering to a named resource in a
// single call. The sink error, if any, is reported upward untouched.
func Save(fs FileSystem, name string, r *Ring) error {
	return fs.WriteFile(name, []byte(r.ToDecimalString()))
}

// LoadFile is Load over the local disk.
func LoadFile(name string) *Ring {
	return Load(LocalFileSystem{}, name)
}

// SaveFile is Save over the local disk.
func SaveFile(name string, r *Ring) error {
	return Save(LocalFileSystem{}, name, r)
}

// firstLine extracts the first line of data, trimmed.
func firstLine(data []byte) string {
	s := string(data)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
