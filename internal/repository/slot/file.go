package slot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

// File keeps the slot as <dir>/<name>.json and replaces it atomically on save.
type File struct {
	path string
}

func NewFile(dir, name string) (*File, error) {
	if name == "" {
		return nil, errors.New("slot name is empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return &File{path: filepath.Join(dir, name+".json")}, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, dto.ErrSlotEmpty
		}

		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	return data, nil
}

func (f *File) Save(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("tmp.Write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("tmp.Sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}
