package main

import (
	"github.com/gutkit/gut/pkg/command"
	"github.com/gutkit/gut/pkg/commands"
	"github.com/gutkit/gut/pkg/configuration"
	"github.com/gutkit/gut/pkg/logger"
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/gutkit/gut/pkg/version"
)

// Overridden at build time with -ldflags "-X main.GUT_VERSION=...".
var GUT_VERSION = "dev"

func main() {
	conf := configuration.NewConfig()

	logger.Log = logger.NewLogger(conf.LogLevel, []string{"stderr"}, []string{"stderr"})

	rt := runtime.New(conf)
	rt.Version = version.NewClient(GUT_VERSION)

	cmd := command.New()

	commands.PreloadCommands()
	commands.Run(rt, cmd)
}
