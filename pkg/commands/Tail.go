package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/gutkit/gut/pkg/tail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Tail() {
	Commands = append(Commands,
		command.Client{
			Parent:    "gut",
			Name:      "tail",
			Short:     "Print the last lines of files",
			Condition: command.EmptyCondition,
			Args:      cobra.MinimumNArgs(1),
			Functions: []func(*runtime.Runtime, []string){
				func(rt *runtime.Runtime, args []string) {
					config, err := buildTailConfig(args)
					if err != nil {
						finish(rt, err)
						return
					}

					ctx := context.Background()
					if config.Follow {
						var stop context.CancelFunc
						ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
						defer stop()
					}

					finish(rt, config.Run(ctx, rt.Out, rt.Err))
				},
			},
			DependsOn: command.EmptyDepend,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().StringP("lines", "n", "10", "Number of lines, +N to start at line N")
				cmd.Flags().StringP("bytes", "c", "", "Number of bytes, +N to start at byte N")
				cmd.Flags().BoolP("quiet", "q", false, "Suppress headers")
				cmd.Flags().BoolP("follow", "f", false, "Keep the file open and print appended data")
				cmd.MarkFlagsMutuallyExclusive("lines", "bytes")
			},
		},
	)
}

func buildTailConfig(files []string) (*tail.Config, error) {
	lines, err := tail.ParseLines(viper.GetString("lines"))
	if err != nil {
		return nil, err
	}

	config := &tail.Config{
		Files:  files,
		Lines:  lines,
		Quiet:  viper.GetBool("quiet"),
		Follow: viper.GetBool("follow"),
	}

	if s := viper.GetString("bytes"); s != "" {
		bytes, err := tail.ParseBytes(s)
		if err != nil {
			return nil, err
		}
		config.Bytes = &bytes
	}

	return config, nil
}
