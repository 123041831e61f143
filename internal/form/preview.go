package form

import (
	"fmt"
	"os"
)

// Preview materializes an attached file to a temporary path so the shell can
// display it before upload. Previews hold an on-disk resource and must be
// released when superseded or when the owning form closes.
type Preview struct {
	path string
}

// NewPreview writes the file's content to a temporary location.
func NewPreview(name string, content []byte) (*Preview, error) {
	tmp, err := os.CreateTemp("", "lmsadmin-preview-*-"+name)
	if err != nil {
		return nil, fmt.Errorf("creating preview: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("writing preview: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("closing preview: %w", err)
	}
	return &Preview{path: tmp.Name()}, nil
}

// Path returns the on-disk location of the preview.
func (p *Preview) Path() string { return p.path }

// Release removes the on-disk resource. Releasing twice is harmless.
func (p *Preview) Release() {
	if p.path == "" {
		return
	}
	_ = os.Remove(p.path)
	p.path = ""
}
