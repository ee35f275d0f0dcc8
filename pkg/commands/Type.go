package commands

import (
	"fmt"

	"github.com/gutkit/gut/internal/helpers"
	"github.com/gutkit/gut/pkg/runtime"
)

// finish turns a utility result into an exit status. ErrPartial was already
// reported line by line; everything else gets printed once.
func finish(rt *runtime.Runtime, err error) {
	if err == nil {
		return
	}

	if err != helpers.ErrPartial {
		fmt.Fprintln(rt.Err, err)
	}

	rt.Fail()
}
