package commands

import (
	"fmt"

	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/spf13/cobra"
)

func Version() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("gut").
			Name("version").
			Short("Print the toolkit version").
			Args(cobra.NoArgs).
			Function(func(rt *runtime.Runtime, args []string) {
				fmt.Fprintln(rt.Out, rt.Version.Version)
			}).
			BuildWithValidation(),
	)
}
