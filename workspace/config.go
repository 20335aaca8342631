// Package workspace anchors relative path text to a configured root path and
// exposes that root to the Fx DI container.
package workspace

import (
	"errors"
	"fmt"

	pathmodel "github.com/0xalexb/hjarta-pathmodel"

	"github.com/hashicorp/go-multierror"
)

// ErrEmptyRoot is returned when the root is empty.
var ErrEmptyRoot = errors.New("root must not be empty")

// ErrInvalidSeparator is returned when the separator collides with a directory token.
var ErrInvalidSeparator = errors.New("separator must not be a directory token")

// ErrRootNotAbsolute is returned when the root does not parse to an absolute path.
var ErrRootNotAbsolute = errors.New("root must be absolute")

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("workspace name must not be empty")

// Config holds the configuration for a Workspace.
type Config struct {
	Root      string `yaml:"root"`
	Separator string `yaml:"separator"`
	Normalize bool   `yaml:"normalize"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	if c.Separator == "" {
		c.Separator = pathmodel.DefaultSeparator

		return true
	}

	return false
}

// Validate reports every problem with the Config at once.
func (c *Config) Validate() error {
	var merr error

	if c.Separator == pathmodel.CurrentDirectory || c.Separator == pathmodel.ParentDirectory {
		merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrInvalidSeparator, c.Separator))
	}

	if c.Root == "" {
		merr = multierror.Append(merr, ErrEmptyRoot)
	} else if !c.RootPath().IsAbsolute() {
		merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrRootNotAbsolute, c.Root))
	}

	return merr
}

// RootPath parses Root as a directory using Separator.
// A root without a trailing separator still denotes a directory.
func (c *Config) RootPath() pathmodel.Path {
	root := pathmodel.Parse(c.Root, pathmodel.WithSeparator(c.Separator))
	if root.IsDirectory() {
		return root
	}

	return pathmodel.Parse(c.Root+root.Separator(), pathmodel.WithSeparator(c.Separator))
}
