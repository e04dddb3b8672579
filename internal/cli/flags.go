package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of values.
type enumValue struct {
	value   *string
	allowed []string
}

var _ pflag.Value = (*enumValue)(nil)

// newEnumValue sets *p to def and returns a flag value accepting only allowed.
func newEnumValue(p *string, def string, allowed []string) *enumValue {
	*p = def
	return &enumValue{value: p, allowed: allowed}
}

func (e *enumValue) String() string {
	return *e.value
}

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(e.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
	}
	*e.value = s
	return nil
}

func (e *enumValue) Type() string {
	return "string"
}

// complete offers the allowed values for shell completion.
func (e *enumValue) complete(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return e.allowed, cobra.ShellCompDirectiveNoFileComp
}

// addEnumFlag registers an enumValue flag with completion.
func addEnumFlag(cmd *cobra.Command, p *string, name, shorthand, def string, allowed []string, usage string) {
	v := newEnumValue(p, def, allowed)
	cmd.Flags().VarP(v, name, shorthand, fmt.Sprintf("%s (%s)", usage, strings.Join(allowed, ", ")))
	_ = cmd.RegisterFlagCompletionFunc(name, v.complete)
}
