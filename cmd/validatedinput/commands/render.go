package commands

import (
	"html/template"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-validatedinput/internal/cli"
	"github.com/goliatone/go-validatedinput/pkg/renderers/html"
	"github.com/goliatone/go-validatedinput/pkg/validated"
)

type renderFlags struct {
	output         string
	fragment       bool
	title          string
	containerClass string
	templatesDir   string
}

func newRenderCommand(a *app) *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render [VALUE]",
		Short: "Render the input as HTML, after validating VALUE when given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&flags.fragment, "fragment", false, "emit only the input fragment without page and stylesheet")
	cmd.Flags().StringVar(&flags.title, "title", "Validated input", "page title")
	cmd.Flags().StringVar(&flags.containerClass, "container-class", html.DefaultContainerClass, "base class of the wrapper container")
	cmd.Flags().StringVar(&flags.templatesDir, "templates-dir", "", "directory of widget templates overriding the bundled ones")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, args []string, flags renderFlags) error {
	v, err := a.validator()
	if err != nil {
		return err
	}
	tokens, err := a.cfg.ResolveTokens()
	if err != nil {
		return cli.NewUserError(err, "check --theme-manifest and --theme-variant")
	}
	renderer, err := html.New(
		html.WithTokens(tokens),
		html.WithContainerClass(flags.containerClass),
		html.WithTemplatesDir(flags.templatesDir),
	)
	if err != nil {
		return cli.NewUserError(err, "check --templates-dir")
	}

	attrs := make(map[string]any, len(a.cfg.Input.Attrs)+1)
	for key, value := range a.cfg.Input.Attrs {
		attrs[key] = value
	}
	if _, ok := attrs["label"]; !ok && a.cfg.Input.Label != "" {
		attrs["label"] = a.cfg.Input.Label
	}

	var fails failures
	ctx := commandContext(cmd)
	w, err := validated.New(ctx, validated.Config[template.HTML]{
		Validator:         v,
		Component:         renderer.TextInput(),
		OnValidatedChange: func(*string) {},
		DefaultValue:      a.cfg.Input.Default,
		ClassName:         a.cfg.Input.ClassName,
		Attrs:             attrs,
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

	if len(args) == 1 {
		if err := submit(w, v, args[0]); err != nil {
			return cli.NewSystemError(err, "")
		}
		if err := fails.get(); err != nil {
			return cli.NewSystemError(err, "the validator could not complete")
		}
	}

	fragment, err := renderer.RenderWrapper(ctx, w)
	if err != nil {
		return cli.NewSystemError(err, "")
	}

	payload := []byte(fragment + "\n")
	if !flags.fragment {
		payload, err = renderer.Page(flags.title, fragment)
		if err != nil {
			return cli.NewSystemError(err, "")
		}
	}

	if flags.output == "" {
		_, err = cmd.OutOrStdout().Write(payload)
		return err
	}
	if err := os.WriteFile(flags.output, payload, 0o644); err != nil {
		return cli.NewSystemError(err, "check that the output directory exists")
	}
	a.logger.Info("rendered input", "path", flags.output)
	return nil
}
