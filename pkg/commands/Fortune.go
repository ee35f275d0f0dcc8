package commands

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/fortune"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Fortune() {
	Commands = append(Commands,
		command.Client{
			Parent:    "gut",
			Name:      "fortune",
			Short:     "Print a random epigram",
			Condition: command.EmptyCondition,
			Args:      cobra.MinimumNArgs(1),
			Functions: []func(*runtime.Runtime, []string){
				func(rt *runtime.Runtime, args []string) {
					config, err := buildFortuneConfig(args)
					if err != nil {
						finish(rt, err)
						return
					}

					finish(rt, config.Run(rt.Out, rt.Err))
				},
			},
			DependsOn: command.EmptyDepend,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().StringP("pattern", "m", "", "Print all fortunes matching the pattern")
				cmd.Flags().BoolP("insensitive", "i", false, "Case-insensitive pattern matching")
				cmd.Flags().StringP("seed", "s", "", "Random seed")
			},
		},
	)
}

func buildFortuneConfig(sources []string) (*fortune.Config, error) {
	config := &fortune.Config{Sources: sources}

	if p := viper.GetString("pattern"); p != "" {
		if viper.GetBool("insensitive") {
			p = fmt.Sprintf("(?i)%s", p)
		}

		re, err := regexp.Compile(p)
		if err != nil {
			return nil, errors.Errorf("Invalid pattern %q", viper.GetString("pattern"))
		}

		config.Pattern = re
	}

	if s := viper.GetString("seed"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.Errorf("illegal seed value -- %s", s)
		}

		config.Seed = &seed
	}

	return config, nil
}
