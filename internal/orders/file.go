package orders

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File is the binary image payload attached to an order item.
type File interface {
	Name() string
	Size() int64
	Open() (io.ReadCloser, error)
}

type diskFile struct {
	path string
	size int64
}

// OpenFile references an image on disk. The file is not read until Open.
func OpenFile(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &diskFile{path: path, size: info.Size()}, nil
}

func (f *diskFile) Name() string                 { return filepath.Base(f.path) }
func (f *diskFile) Size() int64                  { return f.size }
func (f *diskFile) Open() (io.ReadCloser, error) { return os.Open(f.path) }

type memFile struct {
	name string
	data []byte
}

// BytesFile wraps an in-memory payload.
func BytesFile(name string, data []byte) File {
	return &memFile{name: name, data: data}
}

func (f *memFile) Name() string { return f.name }
func (f *memFile) Size() int64  { return int64(len(f.data)) }

func (f *memFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}
