package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/gemchat/internal/config"
	"github.com/mithrel/gemchat/internal/wire"
)

type ctxKey string

const viperKey ctxKey = "viper"

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command. Without a subcommand it
// opens the chat screen.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "gemchat [question]",
		Short:         "gemchat: ask Gemini from the terminal",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(config.ExpandHome(cfgPath))
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), viperKey, v))
			return nil
		},
		RunE: runChat,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml)")
	cmd.PersistentFlags().String("endpoint", "", "generateContent URL (overrides config)")
	cmd.PersistentFlags().String("renderer", "", "answer renderer: lines or markdown")
	addCardFlag(cmd)

	cmd.AddCommand(newChatCmd())
	cmd.AddCommand(newAskCmd())
	cmd.AddCommand(newCardsCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	registerFlagCompletions(cmd)
	return cmd
}

func getViper(cmd *cobra.Command) (*viper.Viper, error) {
	v, ok := cmd.Context().Value(viperKey).(*viper.Viper)
	if !ok {
		return nil, errors.New("internal error: config not loaded")
	}
	return v, nil
}

// buildApp applies flag overrides to the loaded config, validates it and
// wires the app. extra maps flag names to config keys.
func buildApp(cmd *cobra.Command, extra map[string]string) (*wire.App, error) {
	v, err := getViper(cmd)
	if err != nil {
		return nil, err
	}
	applyConfigFlagOverrides(cmd, v, extra)
	cfg, err := config.Decode(v)
	if err != nil {
		return nil, err
	}
	return wire.BuildApp(cmd.Context(), cfg)
}
