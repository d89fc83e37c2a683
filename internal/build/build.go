package build

// Overridden by the linker for release builds.
var (
	Name    = "print-ip"
	Version = "unknown"
)
