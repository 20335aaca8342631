package pathmodel

// Resolve combines p with other.
//
// An absolute other, or one split with a different separator, replaces p entirely.
// Otherwise the result keeps the device, absoluteness and separator of p, appends
// the folder of other to the folder of p and takes the file of other.
func (p Path) Resolve(other Path) Path {
	if other.absolute || other.Separator() != p.Separator() {
		return other
	}

	folder := make([]string, 0, len(p.folder)+len(other.folder))
	folder = append(folder, p.folder...)
	folder = append(folder, other.folder...)

	return newPath(p.device, folder, other.file, p.absolute, p.Separator(), false)
}

// ResolveString parses text with the separator of p and resolves it against p.
func (p Path) ResolveString(text string) Path {
	return p.Resolve(Parse(text, WithSeparator(p.Separator())))
}

// ResolveNormalized resolves other against p and normalizes the result.
func (p Path) ResolveNormalized(other Path) Path {
	return Normalize(p.Resolve(other))
}

// ResolveNormalizedString parses text, resolves it against p and normalizes the result.
func (p Path) ResolveNormalizedString(text string) Path {
	return Normalize(p.ResolveString(text))
}
