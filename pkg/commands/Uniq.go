package commands

import (
	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/gutkit/gut/pkg/uniq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Uniq() {
	Commands = append(Commands,
		command.Client{
			Parent:    "gut",
			Name:      "uniq",
			Short:     "Collapse adjacent duplicate lines",
			Condition: command.EmptyCondition,
			Args:      cobra.RangeArgs(0, 2),
			Functions: []func(*runtime.Runtime, []string){
				func(rt *runtime.Runtime, args []string) {
					config := &uniq.Config{
						Count: viper.GetBool("count"),
					}

					if len(args) > 0 {
						config.InFile = args[0]
					}
					if len(args) > 1 {
						config.OutFile = args[1]
					}

					finish(rt, config.Run(rt.In, rt.Out, rt.Err))
				},
			},
			DependsOn: command.EmptyDepend,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().BoolP("count", "c", false, "Show counts")
			},
		},
	)
}
