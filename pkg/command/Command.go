package command

import (
	"github.com/gutkit/gut/pkg/runtime"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "gut",
		Short: "gut - text utility toolkit",
	}
}

func (command Client) GetName() string { return command.Name }

func (command Client) GetParent() string { return command.Parent }

func (command Client) SetFlags(cmd *cobra.Command) {
	command.Flags(cmd)
}

func (command Client) GetArgs() func(*cobra.Command, []string) error {
	return command.Args
}

func (command Client) GetCondition(rt *runtime.Runtime) bool {
	return command.Condition(rt)
}

func (command Client) GetFunctions() []func(*runtime.Runtime, []string) {
	return command.Functions
}

func (command Client) GetDependsOn() []func(*runtime.Runtime, []string) {
	return command.DependsOn
}
