package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/gemchat/internal/present"
	"github.com/mithrel/gemchat/internal/present/format"
	"github.com/mithrel/gemchat/internal/present/tui"
	"github.com/mithrel/gemchat/internal/session"
)

// askFlagKeys maps ask flags that differ from their config key.
var askFlagKeys = map[string]string{
	"style": "ui.style",
	"width": "ui.word_wrap",
}

func newAskCmd() *cobra.Command {
	var indent bool
	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask one question and print the answer",
		Long: "Ask one question and print the answer. Pass \"-\" to read the question\n" +
			"from stdin. A failed request prints the apology message like any answer.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			question, err := askQuestion(cmd, args)
			if err != nil {
				return err
			}
			if strings.TrimSpace(question) == "" {
				return errors.New("empty question: pass it as arguments, with --card or on stdin")
			}

			app, err := buildApp(cmd, askFlagKeys)
			if err != nil {
				return err
			}
			defer app.Close()

			mode, ok := present.ParseMode(app.Cfg.Output)
			if !ok {
				return fmt.Errorf("unknown output mode %q", app.Cfg.Output)
			}
			if mode == present.ModeTUI {
				return tui.Run(cmd.Context(), app.Responder, tui.Options{
					Question: question,
					Submit:   true,
					Renderer: app.Renderer,
				})
			}

			if err := app.Responder.Submit(cmd.Context(), question); err != nil {
				return err
			}
			s := app.Responder.Session()
			_, failed := s.State().(session.Failed)
			res := format.NewResult(question, s.Answer(), failed, app.Renderer)

			opts := present.Options{
				Mode:       mode,
				JSONIndent: indent,
				Style:      app.Cfg.UI.Style,
				WordWrap:   app.Cfg.UI.WordWrap,
			}
			return renderAnswer(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), res, opts)
		},
	}
	addCardFlag(cmd)
	cmd.Flags().StringP("output", "o", "", "output format: plain, pretty, json, ndjson or tui")
	cmd.Flags().String("style", "", "glamour style for pretty output")
	cmd.Flags().Int("width", 0, "wrap width for pretty output")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent json output")
	return cmd
}

func askQuestion(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read question from stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	return questionFromArgs(cmd, args)
}
