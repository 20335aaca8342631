package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pathmodel "github.com/0xalexb/hjarta-pathmodel"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// for location. Relative locations are resolved against the working directory and
// the result is normalized before the file is read and cached.
// A location with a trailing separator is rejected without touching the filesystem.
func NewFetcher(location pathmodel.Path) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if location.IsDirectory() {
			return nil, fmt.Errorf("path %q: %w", location, ErrPathIsDirectory)
		}

		resolved, err := absolute(location)
		if err != nil {
			return nil, err
		}

		cleanPath := resolved.Complete()

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is normalized and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// NewFetcherFromString parses fpath with the OS separator and calls NewFetcher.
func NewFetcherFromString(fpath string) func() (*Fetcher, error) {
	return NewFetcher(pathmodel.Parse(fpath, pathmodel.WithSeparator(string(filepath.Separator))))
}

func absolute(location pathmodel.Path) (pathmodel.Path, error) {
	if location.IsAbsolute() {
		return location.Normalized(), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return pathmodel.Path{}, fmt.Errorf("resolving %q: %w", location, err)
	}

	separator := string(filepath.Separator)
	if !strings.HasSuffix(wd, separator) {
		wd += separator
	}

	base := pathmodel.Parse(wd, pathmodel.WithSeparator(separator))

	return base.ResolveNormalized(location), nil
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
