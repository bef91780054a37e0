package nsgflowstest

import (
	"errors"
	"fmt"
)

var ErrBlobNotFound = errors.New("blob not found")

// BlobSource serves blob content from memory and records the order blobs were
// read in.
type BlobSource struct {
	Content map[string][]byte
	Read    []string
}

func NewFakeBlobSource() *BlobSource {
	return &BlobSource{
		Content: make(map[string][]byte),
	}
}

func (f *BlobSource) Add(path string, content string) {
	f.Content[path] = []byte(content)
}

func (f *BlobSource) ReadBlob(path string) ([]byte, error) {
	f.Read = append(f.Read, path)

	c, ok := f.Content[path]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrBlobNotFound, path)
	}
	return c, nil
}

func (f *BlobSource) Names() []string {
	names := make([]string, 0, len(f.Content))
	for k := range f.Content {
		names = append(names, k)
	}
	return names
}
