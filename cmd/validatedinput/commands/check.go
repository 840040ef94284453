package commands

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-validatedinput/internal/cli"
	"github.com/goliatone/go-validatedinput/pkg/validated"
)

// ErrInvalidValues is returned by check when at least one value is invalid.
var ErrInvalidValues = errors.New("one or more values are invalid")

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check VALUE...",
		Short: "Validate values in order and report each outcome",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args)
		},
	}
}

type checkOutcome struct {
	value       string
	valid       bool
	description string
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	v, err := a.validator()
	if err != nil {
		return err
	}

	var (
		outcomes []checkOutcome
		fails    failures
	)
	w, err := validated.New(commandContext(cmd), validated.Config[string]{
		Validator: v,
		Component: validated.ComponentFunc[string](func(_ context.Context, props validated.Props) (string, error) {
			return props.Value, nil
		}),
		OnValidatedChange: func(*string) {},
		DefaultValue:      a.cfg.Input.Default,
	},
		validated.WithLogger(a.logger),
		validated.WithErrorHandler(fails.record),
	)
	if err != nil {
		return cli.NewSystemError(err, "")
	}
	defer func() {
		w.Unmount()
		w.Wait()
	}()

	for _, value := range args {
		if err := submit(w, v, value); err != nil {
			return cli.NewSystemError(err, "")
		}
		if err := fails.get(); err != nil {
			return cli.NewSystemError(err, "the validator could not complete")
		}
		res := w.Snapshot().Result
		outcomes = append(outcomes, checkOutcome{
			value:       value,
			valid:       res.IsOk(),
			description: res.Description(),
		})
	}

	out := cmd.OutOrStdout()
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	invalid := 0
	for _, o := range outcomes {
		if o.valid {
			_, _ = ok.Fprint(out, "ok  ")
			_, _ = fmt.Fprintf(out, "%q\n", o.value)
			continue
		}
		invalid++
		_, _ = bad.Fprint(out, "bad ")
		_, _ = fmt.Fprintf(out, "%q: %s\n", o.value, o.description)
	}

	if invalid > 0 {
		return cli.NewUserError(errors.Wrapf(ErrInvalidValues, "%d of %d", invalid, len(outcomes)), "")
	}
	return nil
}
