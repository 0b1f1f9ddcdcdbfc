package completion

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RegisterFlagValues adds value completion for every flag named in values,
// on cmd and all of its subcommands.
func RegisterFlagValues(cmd *cobra.Command, values map[string][]string) {
	register := func(flags *pflag.FlagSet) {
		flags.VisitAll(func(f *pflag.Flag) {
			choices, ok := values[f.Name]
			if !ok {
				return
			}
			_ = cmd.RegisterFlagCompletionFunc(f.Name, fixed(choices))
		})
	}
	register(cmd.LocalNonPersistentFlags())
	register(cmd.PersistentFlags())

	for _, sub := range cmd.Commands() {
		RegisterFlagValues(sub, values)
	}
}

func fixed(choices []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return choices, cobra.ShellCompDirectiveNoFileComp
	}
}
