package commands

import (
	"github.com/gutkit/gut/pkg/comm"
	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Comm() {
	Commands = append(Commands,
		command.Client{
			Parent:    "gut",
			Name:      "comm",
			Short:     "Compare two sorted files line by line",
			Condition: command.EmptyCondition,
			Args:      cobra.ExactArgs(2),
			Functions: []func(*runtime.Runtime, []string){
				func(rt *runtime.Runtime, args []string) {
					config := &comm.Config{
						File1:       args[0],
						File2:       args[1],
						ShowCol1:    !viper.GetBool("1"),
						ShowCol2:    !viper.GetBool("2"),
						ShowCol3:    !viper.GetBool("3"),
						Insensitive: viper.GetBool("insensitive"),
						Delimiter:   viper.GetString("output-delimiter"),
					}

					finish(rt, config.Run(rt.In, rt.Out, rt.Err))
				},
			},
			DependsOn: command.EmptyDepend,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().BoolP("1", "1", false, "Suppress printing of column 1")
				cmd.Flags().BoolP("2", "2", false, "Suppress printing of column 2")
				cmd.Flags().BoolP("3", "3", false, "Suppress printing of column 3")
				cmd.Flags().BoolP("insensitive", "i", false, "Case-insensitive comparison of lines")
				cmd.Flags().StringP("output-delimiter", "d", "\t", "Output delimiter")
			},
		},
	)
}
