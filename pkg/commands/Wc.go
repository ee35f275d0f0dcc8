package commands

import (
	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/gutkit/gut/pkg/wc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Wc() {
	Commands = append(Commands,
		command.Client{
			Parent:    "gut",
			Name:      "wc",
			Short:     "Count lines, words, bytes and characters",
			Condition: command.EmptyCondition,
			Args:      cobra.ArbitraryArgs,
			Functions: []func(*runtime.Runtime, []string){
				func(rt *runtime.Runtime, args []string) {
					config := &wc.Config{
						Files: args,
						Lines: viper.GetBool("lines"),
						Words: viper.GetBool("words"),
						Bytes: viper.GetBool("bytes"),
						Chars: viper.GetBool("chars"),
					}

					finish(rt, config.Run(rt.In, rt.Out, rt.Err))
				},
			},
			DependsOn: command.EmptyDepend,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().BoolP("lines", "l", false, "Show line count")
				cmd.Flags().BoolP("words", "w", false, "Show word count")
				cmd.Flags().BoolP("bytes", "c", false, "Show byte count")
				cmd.Flags().BoolP("chars", "m", false, "Show character count")
				cmd.MarkFlagsMutuallyExclusive("bytes", "chars")
			},
		},
	)
}
