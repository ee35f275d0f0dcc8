package commands

import (
	"github.com/gutkit/gut/pkg/cat"
	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Cat() {
	Commands = append(Commands,
		command.Client{
			Parent:    "gut",
			Name:      "cat",
			Short:     "Concatenate files",
			Condition: command.EmptyCondition,
			Args:      cobra.ArbitraryArgs,
			Functions: []func(*runtime.Runtime, []string){
				func(rt *runtime.Runtime, args []string) {
					config := &cat.Config{
						Files:          args,
						NumberLines:    viper.GetBool("number"),
						NumberNonblank: viper.GetBool("number-nonblank"),
					}

					finish(rt, config.Run(rt.In, rt.Out, rt.Err))
				},
			},
			DependsOn: command.EmptyDepend,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().BoolP("number", "n", false, "Number lines")
				cmd.Flags().BoolP("number-nonblank", "b", false, "Number nonblank lines")
			},
		},
	)
}
