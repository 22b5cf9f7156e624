package stl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExportFailed wraps host failures while storing an exported model
var ErrExportFailed = errors.New("export failed")

// Sink receives a serialized model. Implementations decide where the
// bytes end up: a fixed file, a directory, or a host save dialog.
type Sink interface {
	Write(data []byte, suggestedName string) error
}

// FileSink writes every export to one fixed path, ignoring the
// suggested name
type FileSink struct {
	Path string
}

func (s FileSink) Write(data []byte, _ string) error {
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return nil
}

// DirSink stores exports under one directory, named by the suggested
// file name
type DirSink struct {
	Dir string
}

func (s DirSink) Write(data []byte, suggestedName string) error {
	name := filepath.Base(suggestedName)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = DefaultName + ".stl"
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return nil
}
