package commands

import (
	"strconv"

	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/head"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Head() {
	Commands = append(Commands,
		command.Client{
			Parent:    "gut",
			Name:      "head",
			Short:     "Print the first lines of files",
			Condition: command.EmptyCondition,
			Args:      cobra.ArbitraryArgs,
			Functions: []func(*runtime.Runtime, []string){
				func(rt *runtime.Runtime, args []string) {
					config, err := buildHeadConfig(args)
					if err != nil {
						finish(rt, err)
						return
					}

					finish(rt, config.Run(rt.In, rt.Out, rt.Err))
				},
			},
			DependsOn: command.EmptyDepend,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().StringP("lines", "n", "10", "Number of lines to print")
				cmd.Flags().StringP("bytes", "c", "", "Number of bytes to print")
				cmd.Flags().BoolP("quiet", "q", false, "Suppress headers")
				cmd.MarkFlagsMutuallyExclusive("lines", "bytes")
			},
		},
	)
}

func buildHeadConfig(files []string) (*head.Config, error) {
	config := &head.Config{
		Files: files,
		Quiet: viper.GetBool("quiet"),
	}

	lines, err := strconv.ParseUint(viper.GetString("lines"), 10, 64)
	if err != nil {
		return nil, errors.Errorf("illegal line count -- %s", viper.GetString("lines"))
	}
	config.Lines = lines

	if s := viper.GetString("bytes"); s != "" {
		bytes, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, errors.Errorf("illegal byte count -- %s", s)
		}
		config.Bytes = bytes
		config.ByBytes = true
	}

	return config, nil
}
