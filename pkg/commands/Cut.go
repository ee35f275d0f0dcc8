package commands

import (
	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/cut"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Cut() {
	Commands = append(Commands,
		command.Client{
			Parent:    "gut",
			Name:      "cut",
			Short:     "Extract fields, bytes or characters",
			Condition: command.EmptyCondition,
			Args:      cobra.ArbitraryArgs,
			Functions: []func(*runtime.Runtime, []string){
				func(rt *runtime.Runtime, args []string) {
					config, err := buildCutConfig(args)
					if err != nil {
						finish(rt, err)
						return
					}

					finish(rt, config.Run(rt.In, rt.Out, rt.Err))
				},
			},
			DependsOn: command.EmptyDepend,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().StringP("delim", "d", "\t", "Field delimiter")
				cmd.Flags().StringP("fields", "f", "", "Selected fields")
				cmd.Flags().StringP("bytes", "b", "", "Selected bytes")
				cmd.Flags().StringP("chars", "c", "", "Selected characters")
				cmd.MarkFlagsMutuallyExclusive("fields", "bytes", "chars")
			},
		},
	)
}

func buildCutConfig(files []string) (*cut.Config, error) {
	delimiter, err := cut.ParseDelimiter(viper.GetString("delim"))
	if err != nil {
		return nil, err
	}

	var mode cut.Mode
	var list string

	switch {
	case viper.GetString("fields") != "":
		mode, list = cut.ModeFields, viper.GetString("fields")
	case viper.GetString("bytes") != "":
		mode, list = cut.ModeBytes, viper.GetString("bytes")
	case viper.GetString("chars") != "":
		mode, list = cut.ModeChars, viper.GetString("chars")
	default:
		return nil, errors.New("Must have --fields, --bytes, or --chars")
	}

	positions, err := cut.ParsePositions(list)
	if err != nil {
		return nil, err
	}

	return &cut.Config{
		Files:     files,
		Delimiter: delimiter,
		Mode:      mode,
		Positions: positions,
	}, nil
}
