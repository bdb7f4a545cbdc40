package persistence

import (
	"fmt"
	"os"
	"path/filepath"
)

// File loads and saves the state at a file path.
// An empty path disables persistence.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

// Load reads the state file. The error wraps os.ErrNotExist
// if the file does not exist.
func (f *File) Load() (state *State, err error) {
	if f.path == "" {
		return nil, fmt.Errorf("%w: persistence is disabled", os.ErrNotExist)
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}

	state, err = Decode(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	err = file.Close()
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Save overwrites the state file with the given state.
// It does nothing if persistence is disabled.
func (f *File) Save(state *State) (err error) {
	if f.path == "" {
		return nil
	}

	const dirPerm = os.FileMode(0o700)
	err = os.MkdirAll(filepath.Dir(f.path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	const perm = os.FileMode(0o600)
	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}

	err = state.Encode(file)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("encoding state: %w", err)
	}

	return file.Close()
}
