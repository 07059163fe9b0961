package script

import (
	"bytes"
	"io"
	"os"
)

// Sink is where exported documents go.
type Sink interface {
	Create(path string) (io.WriteCloser, error)
}

// Files writes exports to the file system.
type Files struct{}

func (Files) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Memory keeps exports in memory, by path.
type Memory map[string]*bytes.Buffer

func (m Memory) Create(path string) (io.WriteCloser, error) {
	b := &bytes.Buffer{}
	m[path] = b
	return nopCloser{b}, nil
}

// String returns what was last written to path.
func (m Memory) String(path string) string {
	if b, ok := m[path]; ok {
		return b.String()
	}
	return ""
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
