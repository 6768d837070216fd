package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mithrel/gemchat/internal/prompt"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion <bash|zsh|fish|powershell>",
		Short:     "Generate shell completion scripts",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell %q", args[0])
			}
		},
	}
}

// registerFlagCompletions attaches value completion to the --card,
// --renderer and --output flags of root and its subcommands.
func registerFlagCompletions(root *cobra.Command) {
	fixed := func(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	_ = root.RegisterFlagCompletionFunc("renderer", fixed("lines", "markdown"))

	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		if c.Flags().Lookup("card") != nil {
			_ = c.RegisterFlagCompletionFunc("card", completeCards)
		}
		if c.Name() == "ask" {
			_ = c.RegisterFlagCompletionFunc("output", fixed("plain", "pretty", "json", "ndjson", "tui"))
			_ = c.RegisterFlagCompletionFunc("style", fixed("dark", "light", "dracula", "notty", "pink", "tokyo-night", "ascii"))
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
}

func completeCards(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	out := make([]string, 0, len(prompt.Cards))
	for i, c := range prompt.Cards {
		out = append(out, strconv.Itoa(i+1)+"\t"+c.Text)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
