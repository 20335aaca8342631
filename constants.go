package pathmodel

const (
	// DefaultSeparator splits path segments unless WithSeparator overrides it.
	DefaultSeparator = "/"
	// ExtensionSeparator splits a file into name and extension.
	ExtensionSeparator = "."
	// CurrentDirectory is the folder token for the current directory.
	CurrentDirectory = "."
	// ParentDirectory is the folder token for the parent directory.
	ParentDirectory = ".."
)
