package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	pathmodel "github.com/0xalexb/hjarta-pathmodel"
	"github.com/0xalexb/hjarta-pathmodel/config"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the section is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser interface for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals the part of data addressed by section into target.
// A section without keys parses the entire document.
func (p *Parser) Parse(data []byte, target any, section pathmodel.Path) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	keys := config.Keys(section)
	if len(keys) == 0 {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(toYAMLPath(keys))
	if err != nil {
		return fmt.Errorf("invalid section %q: %w", section, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, section)
		}

		return fmt.Errorf("reading section %q: %w", section, err)
	}

	return nil
}

// toYAMLPath converts section keys to goccy/go-yaml PathString format.
// Examples:
//   - ["key"] -> "$.key"
//   - ["api", "permissions"] -> "$.api.permissions"
func toYAMLPath(keys []string) string {
	return "$." + strings.Join(keys, ".")
}
