package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/gemchat/internal/present/tui"
	"github.com/mithrel/gemchat/internal/prompt"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [question]",
		Short: "Open the chat screen (default command)",
		Long: "Open the chat screen. A question given as arguments or picked with\n" +
			"--card is sent as soon as the screen opens.",
		Args: cobra.ArbitraryArgs,
		RunE: runChat,
	}
	addCardFlag(cmd)
	return cmd
}

func addCardFlag(cmd *cobra.Command) {
	cmd.Flags().String("card", "", "example prompt by number (1-4) or fuzzy text")
}

func runChat(cmd *cobra.Command, args []string) error {
	question, err := questionFromArgs(cmd, args)
	if err != nil {
		return err
	}
	app, err := buildApp(cmd, nil)
	if err != nil {
		return err
	}
	defer app.Close()

	return tui.Run(cmd.Context(), app.Responder, tui.Options{
		Question: question,
		Submit:   strings.TrimSpace(question) != "",
		Renderer: app.Renderer,
	})
}

// questionFromArgs joins args into the question, or resolves --card when
// no arguments are given.
func questionFromArgs(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	query, _ := cmd.Flags().GetString("card")
	if query == "" {
		return "", nil
	}
	card, err := prompt.FindCard(query)
	if err != nil {
		return "", err
	}
	return card.Text, nil
}
