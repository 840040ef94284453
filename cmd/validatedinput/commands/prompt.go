package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-validatedinput/internal/cli"
	"github.com/goliatone/go-validatedinput/pkg/renderers/tui"
)

func newPromptCommand(a *app) *cobra.Command {
	var (
		maxAttempts  int
		promptPrefix string
	)
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Prompt until a valid value is entered and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("max-attempts") {
				a.cfg.Input.MaxAttempts = maxAttempts
			}
			return a.runPrompt(cmd, promptPrefix)
		},
	}
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "give up after this many prompts (0 = unlimited)")
	cmd.Flags().StringVar(&promptPrefix, "prompt-prefix", "", "text printed before the prompt message")
	return cmd
}

func (a *app) runPrompt(cmd *cobra.Command, promptPrefix string) error {
	v, err := a.validator()
	if err != nil {
		return err
	}

	theme := tui.DefaultTheme
	theme.PromptPrefix = promptPrefix

	session := tui.NewSession(
		tui.WithTheme(theme),
		tui.WithOutput(cmd.ErrOrStderr()),
		tui.WithMaxAttempts(a.cfg.Input.MaxAttempts),
		tui.WithColor(!color.NoColor),
		tui.WithLogger(a.logger),
	)
	value, err := session.Run(commandContext(cmd), tui.Config{
		Validator:    v,
		DefaultValue: a.cfg.Input.Default,
		Label:        a.cfg.Input.Label,
		Attrs:        a.cfg.Input.Attrs,
	})
	switch {
	case errors.Is(err, tui.ErrAborted):
		return cli.NewUserError(err, "")
	case errors.Is(err, tui.ErrTooManyAttempts):
		return cli.NewUserError(err, "raise --max-attempts or fix the input")
	case err != nil:
		return cli.NewSystemError(err, "")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
