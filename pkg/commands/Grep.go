package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/grep"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/gutkit/gut/pkg/static"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Grep() {
	Commands = append(Commands,
		command.Client{
			Parent:    "gut",
			Name:      "grep",
			Short:     "Search inputs for a pattern",
			Condition: command.EmptyCondition,
			Args:      cobra.MinimumNArgs(1),
			Functions: []func(*runtime.Runtime, []string){
				func(rt *runtime.Runtime, args []string) {
					config, err := buildGrepConfig(rt, args)
					if err != nil {
						finish(rt, err)
						return
					}

					finish(rt, config.Run(rt.In, rt.Out, rt.Err))
				},
			},
			DependsOn: command.EmptyDepend,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().BoolP("recursive", "r", false, "Recursive search")
				cmd.Flags().BoolP("count", "c", false, "Count occurrences")
				cmd.Flags().BoolP("invert-match", "v", false, "Invert match")
				cmd.Flags().BoolP("insensitive", "i", false, "Case-insensitive matching")
				cmd.Flags().BoolP("perl-regexp", "P", false, "Use the backtracking regex engine")
				cmd.Flags().String("color", "", "Highlight matches: auto, always, never")
			},
		},
	)
}

func buildGrepConfig(rt *runtime.Runtime, args []string) (*grep.Config, error) {
	matcher, err := grep.NewMatcher(args[0], viper.GetBool("insensitive"), viper.GetBool("perl-regexp"))
	if err != nil {
		return nil, err
	}

	highlight, err := resolveColor(rt)
	if err != nil {
		return nil, err
	}

	return &grep.Config{
		Matcher:   matcher,
		Files:     args[1:],
		Recursive: viper.GetBool("recursive"),
		Count:     viper.GetBool("count"),
		Invert:    viper.GetBool("invert-match"),
		Highlight: highlight,
	}, nil
}

// resolveColor folds the --color flag and the configured default into a
// plain on/off decision, forcing color through pipes with "always".
func resolveColor(rt *runtime.Runtime) (bool, error) {
	mode := viper.GetString("color")
	if mode == "" {
		mode = rt.Config.ColorMode
	}

	switch mode {
	case static.COLOR_NEVER:
		return false, nil
	case static.COLOR_ALWAYS:
		color.NoColor = false
		return true, nil
	case static.COLOR_AUTO:
		if f, ok := rt.Out.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()), nil
		}

		return false, nil
	default:
		return false, errors.Errorf("invalid --color %q, expected auto, always or never", mode)
	}
}
