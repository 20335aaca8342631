package pathmodel

import (
	"log/slog"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Path is an immutable, structured path.
// The zero value is the empty relative path using DefaultSeparator.
type Path struct {
	device     string
	folder     []string
	file       string
	absolute   bool
	separator  string
	normalized bool

	directory string
	complete  string
}

// Parse splits text on the configured separator into a Path.
// Every input, including the empty string, produces a valid Path.
func Parse(text string, opts ...Option) Path {
	options := newOptions(opts)
	separator := options.Separator

	if text == "" {
		return newPath("", nil, "", false, separator, false)
	}

	tokens := strings.Split(text, separator)

	var (
		device   string
		absolute bool
	)

	switch {
	case isDevice(tokens[0]):
		device = tokens[0]
		absolute = true
		tokens = tokens[1:]
	case tokens[0] == "":
		absolute = true
		tokens = tokens[1:]
	}

	var file string

	if last := len(tokens) - 1; last >= 0 {
		if isFile(tokens[last]) {
			file = tokens[last]
		}

		tokens = tokens[:last]
	}

	return newPath(device, tokens, file, absolute, separator, false)
}

func newPath(device string, folder []string, file string, absolute bool, separator string, normalized bool) Path {
	if len(folder) == 0 {
		folder = nil
	}

	directory := composeDirectory(folder, absolute, separator)

	return Path{
		device:     device,
		folder:     folder,
		file:       file,
		absolute:   absolute,
		separator:  separator,
		normalized: normalized,
		directory:  directory,
		complete:   device + directory + file,
	}
}

func composeDirectory(folder []string, absolute bool, separator string) string {
	if !absolute && len(folder) == 0 {
		return ""
	}

	var builder strings.Builder

	if absolute {
		builder.WriteString(separator)
	}

	for _, segment := range folder {
		builder.WriteString(segment)
		builder.WriteString(separator)
	}

	return builder.String()
}

// isDevice reports whether token is a drive letter followed by a colon.
func isDevice(token string) bool {
	if len(token) != 2 || token[1] != ':' {
		return false
	}

	c := token[0]

	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isFile(token string) bool {
	return token != "" && token != CurrentDirectory && token != ParentDirectory
}

// Device returns the drive-letter prefix such as "C:", or "" if there is none.
func (p Path) Device() string {
	return p.device
}

// Folder returns a copy of the directory segments in order.
func (p Path) Folder() []string {
	if len(p.folder) == 0 {
		return nil
	}

	folder := make([]string, len(p.folder))
	copy(folder, p.folder)

	return folder
}

// File returns the trailing file component, or "" if the path denotes a directory.
func (p Path) File() string {
	return p.file
}

// IsAbsolute reports whether the path starts with a device or the separator.
func (p Path) IsAbsolute() bool {
	return p.absolute
}

// IsDirectory reports whether the path has no file component.
func (p Path) IsDirectory() bool {
	return p.file == ""
}

// Separator returns the separator the path was parsed with.
func (p Path) Separator() string {
	if p.separator == "" {
		return DefaultSeparator
	}

	return p.separator
}

// FileName returns the file without its last extension.
func (p Path) FileName() string {
	idx := strings.LastIndex(p.file, ExtensionSeparator)
	if idx < 0 {
		return p.file
	}

	return p.file[:idx]
}

// FileExtension returns the part of the file after the last extension separator.
func (p Path) FileExtension() string {
	idx := strings.LastIndex(p.file, ExtensionSeparator)
	if idx < 0 {
		return ""
	}

	return p.file[idx+len(ExtensionSeparator):]
}

// Directory returns the path without device and file.
// Absolute paths start with the separator and non-empty folders end with it.
func (p Path) Directory() string {
	return p.directory
}

// Complete returns device, directory and file composed into one string.
func (p Path) Complete() string {
	return p.complete
}

// String implements fmt.Stringer and returns Complete.
func (p Path) String() string {
	return p.complete
}

// Equal reports whether both paths compose to the same string.
// Separators are not compared.
func (p Path) Equal(other Path) bool {
	return p.complete == other.complete
}

// Hash returns a hash of the complete string, consistent with Equal.
func (p Path) Hash() uint64 {
	return xxhash.Sum64String(p.complete)
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.complete), nil
}

// LogValue implements slog.LogValuer.
func (p Path) LogValue() slog.Value {
	return slog.StringValue(p.complete)
}
