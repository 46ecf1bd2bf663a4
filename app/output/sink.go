package output

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
)

// Sink persists a rendered newsletter and returns the path it was
// written to. The pipeline core only talks to this interface, so it
// never touches the filesystem directly.
type Sink interface {
	Write(filename string, data []byte) (string, error)
}

// Opener opens a written newsletter for the operator.
type Opener interface {
	Open(path string) error
}

// FileSink writes newsletters into a fixed directory, overwriting any
// existing file of the same name.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Write(filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write newsletter file: %w", err)
	}
	slog.Debug("Newsletter file written", "path", path, "bytes", len(data))
	return path, nil
}

// Browser opens files in the default web browser.
type Browser struct{}

func (Browser) Open(path string) error {
	return browser.OpenFile(path)
}
