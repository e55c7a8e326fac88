package jsonl

// Version information for the jsonl package.
const (
	// Version is the current version of the jsonl package.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
