package pathmodel

// Normalize returns p with redundant folder entries removed.
//
// Consecutive empty segments collapse into one. A "." survives only as the first
// segment. A ".." removes the preceding segment; with nothing to remove, or only a
// leading ".", it is dropped. Device, file, absoluteness and separator are kept.
// Paths that are already normalized are returned as is.
func Normalize(p Path) Path {
	if p.normalized {
		return p
	}

	folder := make([]string, 0, len(p.folder))

	for idx, segment := range p.folder {
		last := len(folder) - 1

		switch segment {
		case "":
			if last < 0 || folder[last] != "" {
				folder = append(folder, segment)
			}
		case CurrentDirectory:
			if idx == 0 {
				folder = append(folder, segment)
			}
		case ParentDirectory:
			if last > 0 || (last == 0 && folder[0] != CurrentDirectory) {
				folder = folder[:last]
			}
		default:
			folder = append(folder, segment)
		}
	}

	return newPath(p.device, folder, p.file, p.absolute, p.Separator(), true)
}

// Normalized is shorthand for Normalize(p).
func (p Path) Normalized() Path {
	return Normalize(p)
}

// IsNormalized reports whether p came out of Normalize.
func (p Path) IsNormalized() bool {
	return p.normalized
}
