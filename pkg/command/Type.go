package command

import (
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/spf13/cobra"
)

type Client struct {
	Parent    string
	Name      string
	Short     string
	Args      func(*cobra.Command, []string) error
	Condition func(*runtime.Runtime) bool
	Functions []func(*runtime.Runtime, []string)
	DependsOn []func(*runtime.Runtime, []string)
	Flags     func(command *cobra.Command)
}
