package command

import (
	"fmt"

	"github.com/gutkit/gut/pkg/runtime"
	"github.com/spf13/cobra"
)

type Builder struct {
	parent    string
	name      string
	short     string
	flags     func(cmd *cobra.Command)
	args      func(*cobra.Command, []string) error
	condition func(*runtime.Runtime) bool
	functions []func(*runtime.Runtime, []string)
	dependsOn []func(*runtime.Runtime, []string)
}

func NewBuilder() *Builder {
	return &Builder{
		args:      cobra.NoArgs,
		flags:     EmptyFlag,
		condition: EmptyCondition,
		dependsOn: EmptyDepend,
	}
}

func (cb *Builder) Parent(parent string) *Builder {
	cb.parent = parent
	return cb
}

func (cb *Builder) Name(name string) *Builder {
	cb.name = name
	return cb
}

func (cb *Builder) Short(short string) *Builder {
	cb.short = short
	return cb
}

func (cb *Builder) Flags(flags func(cmd *cobra.Command)) *Builder {
	cb.flags = flags
	return cb
}

func (cb *Builder) Args(args func(*cobra.Command, []string) error) *Builder {
	cb.args = args
	return cb
}

func (cb *Builder) Function(fns ...func(*runtime.Runtime, []string)) *Builder {
	cb.functions = append(cb.functions, fns...)
	return cb
}

func (cb *Builder) Condition(fn func(*runtime.Runtime) bool) *Builder {
	cb.condition = fn
	return cb
}

func (cb *Builder) DependsOn(fns ...func(*runtime.Runtime, []string)) *Builder {
	cb.dependsOn = append(cb.dependsOn, fns...)
	return cb
}

func (cb *Builder) Build() Client {
	return Client{
		Parent:    cb.parent,
		Name:      cb.name,
		Short:     cb.short,
		Args:      cb.args,
		Flags:     cb.flags,
		Functions: cb.functions,
		Condition: cb.condition,
		DependsOn: cb.dependsOn,
	}
}

func (cb *Builder) Validate() error {
	if cb.name == "" {
		return fmt.Errorf("command name is required")
	}
	if cb.parent == "" {
		return fmt.Errorf("command parent is required")
	}
	return nil
}

func (cb *Builder) BuildWithValidation() Client {
	if err := cb.Validate(); err != nil {
		panic(err)
	}

	return cb.Build()
}

var (
	EmptyCondition = func(*runtime.Runtime) bool { return true }
	EmptyFunction  = func(rt *runtime.Runtime, args []string) {}
	EmptyDepend    = []func(*runtime.Runtime, []string){}
	EmptyFlag      = func(cmd *cobra.Command) {}
)
