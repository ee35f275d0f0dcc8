package runtime

import (
	"io"
	"os"

	"github.com/gutkit/gut/pkg/configuration"
	"github.com/gutkit/gut/pkg/version"
)

// Runtime is what every command function receives: resolved configuration,
// the binary version, and the three standard streams. Tests swap the streams
// for buffers.
type Runtime struct {
	Config  *configuration.Configuration
	Version *version.Version

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// ExitCode collects the worst exit status seen while a command runs.
	ExitCode int
}

func New(conf *configuration.Configuration) *Runtime {
	return &Runtime{
		Config: conf,
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// Fail records a nonzero exit status without aborting the run.
func (r *Runtime) Fail() {
	if r.ExitCode == 0 {
		r.ExitCode = 1
	}
}
