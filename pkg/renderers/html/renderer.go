package html

import (
	"context"
	"html/template"
	"strings"

	"github.com/cockroachdb/errors"

	rendertemplate "github.com/goliatone/go-validatedinput/pkg/render/template"
	"github.com/goliatone/go-validatedinput/pkg/render/template/gotemplate"
	"github.com/goliatone/go-validatedinput/pkg/theme"
	"github.com/goliatone/go-validatedinput/pkg/validated"
	"github.com/goliatone/go-validatedinput/pkg/widgets"
)

// DefaultContainerClass is the base class of the wrapper container.
const DefaultContainerClass = "validated-input"

// Renderer draws validated inputs as HTML fragments.
type Renderer struct {
	templates      rendertemplate.TemplateRenderer
	widgets        *widgets.Registry
	tokens         theme.Tokens
	containerClass string
}

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:     TemplatesFS(),
		tokens:         theme.Defaults(),
		containerClass: DefaultContainerClass,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine, err := gotemplate.New(
		gotemplate.WithBaseDir(cfg.templateDir),
		gotemplate.WithFS(cfg.templateFS),
		gotemplate.WithExtension(".tmpl"),
		gotemplate.WithTemplateFunc(map[string]any{
			"classnames": gotemplate.ClassNames,
		}),
		gotemplate.WithGlobalData(map[string]any{
			"base": cfg.containerClass,
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "html renderer: configure template renderer")
	}

	return &Renderer{
		templates:      engine,
		widgets:        widgets.NewRegistry(),
		tokens:         cfg.tokens,
		containerClass: cfg.containerClass,
	}, nil
}

// TextInput returns the delegated widget for a validated.Wrapper. The
// concrete element is picked by the widget registry from forwarded attrs.
func (r *Renderer) TextInput() validated.Component[template.HTML] {
	return validated.ComponentFunc[template.HTML](r.renderWidget)
}

func (r *Renderer) renderWidget(ctx context.Context, props validated.Props) (template.HTML, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	widget := r.widgets.Resolve(props)
	inputType := strings.TrimSpace(props.StringAttr("type"))
	if inputType == "" || widget != widgets.WidgetText {
		inputType = "text"
	}

	classes := []string{"input"}
	classes = append(classes, strings.Fields(props.StringAttr("class"))...)
	if props.IsError {
		classes = append(classes, "is-error")
	}

	out, err := r.templates.RenderTemplate(widget, map[string]any{
		"type":     inputType,
		"value":    props.Value,
		"is_error": props.IsError,
		"classes":  strings.Join(classes, " "),
		"id":       props.StringAttr("id"),
		"label":    sanitizeMarkup(props.StringAttr("label")),
		"hint":     sanitizeMarkup(props.StringAttr("hint")),
		"options":  widgets.Options(props),
		"attrs":    htmlAttrs(props),
	})
	if err != nil {
		return "", errors.Wrapf(err, "html renderer: render widget %q", widget)
	}
	return template.HTML(strings.TrimSpace(out)), nil
}

// Compose wraps a rendered view in the container element and appends the
// error annotation whenever the view is invalid, even with an empty
// description.
func (r *Renderer) Compose(view validated.View[template.HTML]) (template.HTML, error) {
	data := map[string]any{
		"class_name": view.ClassName,
		"widget":     string(view.Widget),
		"has_error":  view.HasError(),
	}
	if view.HasError() {
		data["error"] = view.Error.Description
	}
	out, err := r.templates.RenderTemplate("container", data)
	if err != nil {
		return "", errors.Wrap(err, "html renderer: render container")
	}
	return template.HTML(strings.TrimSpace(out)), nil
}

// RenderWrapper renders the wrapper's current state and composes it.
func (r *Renderer) RenderWrapper(ctx context.Context, w *validated.Wrapper[template.HTML]) (template.HTML, error) {
	if w == nil {
		return "", errors.New("html renderer: wrapper is nil")
	}
	view, err := w.Render(ctx)
	if err != nil {
		return "", err
	}
	return r.Compose(view)
}

// Stylesheet returns the error annotation rules scoped to the container class.
func (r *Renderer) Stylesheet() string {
	return theme.Stylesheet(r.tokens, "."+r.containerClass)
}

// Page embeds fragments in a standalone document carrying the stylesheet.
func (r *Renderer) Page(title string, fragments ...template.HTML) ([]byte, error) {
	var body strings.Builder
	for i, fragment := range fragments {
		if i > 0 {
			body.WriteByte('\n')
		}
		body.WriteString(string(fragment))
	}
	out, err := r.templates.RenderTemplate("page", map[string]any{
		"title":      title,
		"stylesheet": theme.RootVars(r.tokens) + r.Stylesheet(),
		"body":       body.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "html renderer: render page")
	}
	return []byte(out), nil
}
