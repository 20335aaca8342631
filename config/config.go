package config

import (
	"fmt"
	"log/slog"

	pathmodel "github.com/0xalexb/hjarta-pathmodel"
)

// SectionSeparator separates nested keys in a section path, as in "workspace:cache".
const SectionSeparator = ":"

// Parser defines an interface for parsing configuration data into a target structure.
//
// The section is a path split on SectionSeparator whose folder and file name the
// nested keys to descend into. For example:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "database:connection:timeout" navigates three levels deep
//   - "" (empty section) means parse the entire document
//
// See config/parser/yaml for an implementation using goccy/go-yaml PathString.
type Parser interface {
	Parse(data []byte, target any, section pathmodel.Path) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Section parses key into a normalized section path.
func Section(key string) pathmodel.Path {
	return pathmodel.Parse(key, pathmodel.WithSeparator(SectionSeparator)).Normalized()
}

// Keys returns the non-empty keys of section in order, skipping "." markers.
func Keys(section pathmodel.Path) []string {
	folder := section.Folder()
	keys := make([]string, 0, len(folder)+1)

	for _, key := range append(folder, section.File()) {
		if key == "" || key == pathmodel.CurrentDirectory {
			continue
		}

		keys = append(keys, key)
	}

	return keys
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, key string) func(Parser, DataFetcher) (*T, error) {
	section := Section(key)

	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, section)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.Any("section", section))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
