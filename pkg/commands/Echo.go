package commands

import (
	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/echo"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Echo() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("gut").
			Name("echo").
			Short("Print arguments").
			Args(cobra.MinimumNArgs(1)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().BoolP("no-newline", "n", false, "Do not print newline")
			}).
			Function(func(rt *runtime.Runtime, args []string) {
				config := &echo.Config{
					Text:        args,
					OmitNewline: viper.GetBool("no-newline"),
				}

				finish(rt, config.Run(rt.Out))
			}).
			BuildWithValidation(),
	)
}
