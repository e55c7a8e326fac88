package watch

// Version information for the watch package.
const (
	// Version is the current version of the watch package.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
