package dto

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// FileRef is a binary payload selected for upload, held in memory until the
// owning form submits it as a multipart field.
type FileRef struct {
	Name        string
	ContentType string
	Content     []byte
}

// NewFileRef reads a local file into a FileRef. The content type is sniffed
// from the leading bytes.
func NewFileRef(path string) (*FileRef, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", path, err)
	}
	return &FileRef{
		Name:        filepath.Base(path),
		ContentType: sniffContentType(content),
		Content:     content,
	}, nil
}

// Open returns a fresh reader over the content, so a FileRef can be sent
// more than once (a failed submission may be retried by the user).
func (f *FileRef) Open() io.Reader {
	return bytes.NewReader(f.Content)
}

func sniffContentType(content []byte) string {
	return http.DetectContentType(content)
}
