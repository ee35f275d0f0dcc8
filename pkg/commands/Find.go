package commands

import (
	"regexp"

	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/find"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Find() {
	Commands = append(Commands,
		command.Client{
			Parent:    "gut",
			Name:      "find",
			Short:     "Walk directory trees and filter entries",
			Condition: command.EmptyCondition,
			Args:      cobra.ArbitraryArgs,
			Functions: []func(*runtime.Runtime, []string){
				func(rt *runtime.Runtime, args []string) {
					config, err := buildFindConfig(args)
					if err != nil {
						finish(rt, err)
						return
					}

					finish(rt, config.Run(rt.Out, rt.Err))
				},
			},
			DependsOn: command.EmptyDepend,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().StringSliceP("name", "n", nil, "Regex filters on the entry name")
				cmd.Flags().StringSliceP("glob", "g", nil, "Glob filters on the entry name")
				cmd.Flags().StringSliceP("type", "t", nil, "Entry types: f, d, l")
				cmd.Flags().Bool("long", false, "Print a type/size/path table")
			},
		},
	)
}

func buildFindConfig(paths []string) (*find.Config, error) {
	var names []*regexp.Regexp
	for _, s := range viper.GetStringSlice("name") {
		re, err := find.ParseName(s)
		if err != nil {
			return nil, err
		}
		names = append(names, re)
	}

	var globs []string
	for _, s := range viper.GetStringSlice("glob") {
		pattern, err := find.ParseGlob(s)
		if err != nil {
			return nil, err
		}
		globs = append(globs, pattern)
	}

	var types []find.EntryType
	for _, s := range viper.GetStringSlice("type") {
		t, err := find.ParseEntryType(s)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return &find.Config{
		Paths: paths,
		Names: names,
		Globs: globs,
		Types: types,
		Long:  viper.GetBool("long"),
	}, nil
}
