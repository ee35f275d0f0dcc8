package static

// Directory Constants
const (
	ROOTDIR   = "gut"
	CONFIGDIR = "config"
	LOGDIR    = "logs"
)

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

// Stdin marker accepted anywhere a file argument is expected
const STDIN_MARKER = "-"

// Structure Paths
var STRUCTURE = []string{
	CONFIGDIR,
	LOGDIR,
}

// Color Modes
const (
	COLOR_AUTO   = "auto"
	COLOR_ALWAYS = "always"
	COLOR_NEVER  = "never"
)
