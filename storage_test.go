package digitring

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// memFS is an in-memory FileSystem for tests.
type memFS struct {
	files    map[string][]byte
	writeErr error
}

func newMemFS() *memFS {
	return &memFS{files: make(map[string][]byte)}
}

func (m *memFS) ReadFile(name string) ([]byte, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *memFS) WriteFile(name string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[name] = data
	return nil
}

func TestLoadFirstLine(t *testing.T) {
	fs := newMemFS()
	fs.files["num.txt"] = []byte("12345\nsecond line ignored\n")

	r := Load(fs, "num.txt")
	if r.String() != "12345" {
		t.Errorf("expected 12345, got %q", r.String())
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	fs := newMemFS()
	fs.files["num.txt"] = []byte("  90210\r\n")

	r := Load(fs, "num.txt")
	if r.String() != "90210" {
		t.Errorf("expected 90210, got %q", r.String())
	}
}

func TestLoadMissingFileYieldsEmptyRing(t *testing.T) {
	r := Load(newMemFS(), "nope.txt")
	if !r.IsEmpty() {
		t.Errorf("missing file should load as empty ring, got %q", r.String())
	}
}

func TestLoadInvalidContentYieldsEmptyRing(t *testing.T) {
	fs := newMemFS()
	fs.files["num.txt"] = []byte("12XYZ\n")

	r := Load(fs, "num.txt")
	if !r.IsEmpty() {
		t.Errorf("invalid content should load as empty ring, got %q", r.String())
	}
}

func TestSaveWritesDecimalForm(t *testing.T) {
	fs := newMemFS()

	// Hex-tagged FF saves as its decimal rendering.
	r := Parse("255").ChangeScale()
	if err := Save(fs, "out.txt", r); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := string(fs.files["out.txt"]); got != "255" {
		t.Errorf("expected 255, got %q", got)
	}
}

func TestSaveSurfacesSinkError(t *testing.T) {
	fs := newMemFS()
	fs.writeErr = errors.New("disk full")

	if err := Save(fs, "out.txt", Parse("1")); err == nil {
		t.Error("Save should surface the sink error")
	}
}

func TestLocalFileSystemRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "number.txt")

	if err := SaveFile(path, Parse("12345")); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	r := LoadFile(path)
	if r.String() != "12345" {
		t.Errorf("expected 12345, got %q", r.String())
	}

	// Missing files load as empty rings, never errors.
	if !LoadFile(filepath.Join(dir, "missing.txt")).IsEmpty() {
		t.Error("missing file should load as empty ring")
	}
}
