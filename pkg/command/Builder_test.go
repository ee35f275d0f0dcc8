package command

import (
	"testing"

	"github.com/gutkit/gut/pkg/runtime"
	"github.com/stretchr/testify/assert"
)

// TestBuilder tests defaults and field wiring
func TestBuilder(t *testing.T) {
	called := false

	cmd := NewBuilder().
		Parent("gut").
		Name("noop").
		Short("does nothing").
		Function(func(rt *runtime.Runtime, args []string) { called = true }).
		Build()

	assert.Equal(t, "noop", cmd.GetName())
	assert.Equal(t, "gut", cmd.GetParent())
	assert.True(t, cmd.GetCondition(&runtime.Runtime{}))
	assert.Empty(t, cmd.GetDependsOn())

	for _, fn := range cmd.GetFunctions() {
		fn(&runtime.Runtime{}, nil)
	}
	assert.True(t, called)
}

// TestBuilderValidate tests that name and parent are required
func TestBuilderValidate(t *testing.T) {
	assert.Error(t, NewBuilder().Name("x").Validate())
	assert.Error(t, NewBuilder().Parent("gut").Validate())
	assert.NoError(t, NewBuilder().Parent("gut").Name("x").Validate())

	assert.Panics(t, func() {
		NewBuilder().Build()
		NewBuilder().BuildWithValidation()
	})
}
