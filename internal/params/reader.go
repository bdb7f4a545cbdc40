package params

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

type Warner interface {
	Warn(message string)
}

// Reader reads the TOML configuration file.
type Reader struct {
	warner   Warner
	readFile func(name string) ([]byte, error)
}

func NewReader(warner Warner) *Reader {
	return &Reader{
		warner:   warner,
		readFile: os.ReadFile,
	}
}

// DefaultPaths are the configuration file paths tried in
// order when no configuration file path is given.
func DefaultPaths() []string {
	return []string{"./config.toml", "/etc/dynners/config.toml"}
}

// Read reads, parses and validates the configuration file at path,
// or at the first default path where a file exists if path is empty.
// The user agent default is built using the version given.
func (r *Reader) Read(path, version string) (config Config, err error) {
	paths := []string{path}
	if path == "" {
		paths = DefaultPaths()
	}

	var data []byte
	for _, path = range paths {
		data, err = r.readFile(path)
		if err == nil {
			break
		} else if !errors.Is(err, fs.ErrNotExist) {
			return config, fmt.Errorf("reading configuration file: %w", err)
		}
	}
	if err != nil {
		return config, fmt.Errorf("%w: tried %v", ErrConfigNotFound, paths)
	}

	config, err = parse(data, r.warner)
	if err != nil {
		return config, fmt.Errorf("%w: %s: %w", ErrConfigNotValid, path, err)
	}
	config.Path = path
	config.Raw = data

	config.General.setDefaults(version)

	err = config.validate()
	if err != nil {
		return config, err
	}

	return config, nil
}
