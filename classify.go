package condor2nav

// Kind identifies the storage backend that owns a path.
type Kind int

const (
	// Local is the host filesystem, reached through standard OS file APIs.
	Local Kind = iota
	// RemoteDevice is a paired navigation device, reached only through the
	// device-sync channel.
	RemoteDevice
	// NetworkShare is a UNC-style path naming a machine and a shared volume.
	NetworkShare
)

func (k Kind) String() string {
	switch k {
	case Local:
		return "local"
	case RemoteDevice:
		return "device"
	case NetworkShare:
		return "share"
	default:
		return "unknown"
	}
}

// Classification is the result of inspecting a path prefix. RootSkipSegments
// counts the leading segments that form an unsplittable root: a network
// share's machine and share name are never passed to directory creation on
// their own.
type Classification struct {
	Backend          Kind
	RootSkipSegments int
}

// Classify decides which backend owns a path, from the path syntax alone.
// It never touches any backend. The same path always classifies identically:
//
//   - two leading separators: NetworkShare, the machine and share segments
//     form the skip region
//   - one leading separator followed by a non-separator (length > 2):
//     RemoteDevice
//   - anything else, including the empty path: Local
func Classify(path string) Classification {
	switch {
	case len(path) >= 2 && isSeparator(path[0]) && isSeparator(path[1]):
		return Classification{Backend: NetworkShare, RootSkipSegments: 2}
	case len(path) > 2 && isSeparator(path[0]) && !isSeparator(path[1]):
		return Classification{Backend: RemoteDevice}
	default:
		return Classification{Backend: Local}
	}
}

// SplitPath splits a file path into its containing directory and file name.
// The directory part keeps its trailing separator; for a bare file name the
// directory part is empty.
func SplitPath(path string) (dir, file string) {
	for i := len(path) - 1; i >= 0; i-- {
		if isSeparator(path[i]) {
			return path[:i+1], path[i+1:]
		}
	}
	return "", path
}

// isSeparator reports whether c is a path segment separator. The native
// convention uses backslashes; forward slashes are accepted as an alternate.
func isSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

// indexSeparator returns the index of the first separator at or after from,
// or -1 if there is none.
func indexSeparator(path string, from int) int {
	for i := from; i < len(path); i++ {
		if isSeparator(path[i]) {
			return i
		}
	}
	return -1
}
