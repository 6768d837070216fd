package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mithrel/gemchat/internal/prompt"
)

func newCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cards [query]",
		Short: "List the example prompts, or print the one matching query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				card, err := prompt.FindCard(args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), card.Text)
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i, c := range prompt.Cards {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, c.Icon, c.Text)
			}
			return tw.Flush()
		},
	}
}
