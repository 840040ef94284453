package template_test

import (
	"embed"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-validatedinput/pkg/render/template/gotemplate"
	"github.com/goliatone/go-validatedinput/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	assertGolden(t, "hello.golden", result, written)
}

func TestGoTemplateEngine_GlobalData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "production"},
	}))
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	assertGolden(t, "use-global.golden", result, written)
}

func TestGoTemplateEngine_TemplateFuncFilter(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"shout": func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(strings.ToUpper(in.String()) + "!"), nil
		},
	}))

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})

	assertGolden(t, "use-filter.golden", result, written)
}

func TestGoTemplateEngine_TemplateFuncGlobal(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"greet": func(name string) string { return "Hi, " + name },
	}))

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-func", map[string]any{"name": "Ada"}, w)
	})

	assertGolden(t, "use-func.golden", result, written)
}

func TestGoTemplateEngine_RejectsNonCallableTemplateFunc(t *testing.T) {
	_, err := gotemplate.New(
		gotemplate.WithFS(subFS(t)),
		gotemplate.WithTemplateFunc(map[string]any{"answer": 42}),
	)
	if err == nil {
		t.Fatalf("expected non callable template func to be rejected")
	}
}

func TestGoTemplateEngine_EscapesValuesAndJoinsClasses(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"classnames": gotemplate.ClassNames,
	}))

	type data struct {
		Base  []string `json:"base"`
		Extra string   `json:"extra"`
		Value string   `json:"value"`
	}
	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("escape", data{
			Base:  []string{"validated-input", " "},
			Extra: "wide validated-input",
			Value: "<b>",
		}, w)
	})

	assertGolden(t, "escape.golden", result, written)
}

func TestGoTemplateEngine_BaseDirOverridesFS(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "hello.tpl"), "Bonjour, {{ name }}!\n")

	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir), gotemplate.WithFS(subFS(t)))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render dir template: %v", err)
	}
	if got != "Bonjour, Ada!\n" {
		t.Fatalf("dir template = %q", got)
	}

	got, err = engine.RenderTemplate("use-global", map[string]any{"settings": map[string]any{"env": "dev"}})
	if err != nil {
		t.Fatalf("render fs fallback: %v", err)
	}
	if got != "env=dev\n" {
		t.Fatalf("fs fallback = %q", got)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	_, err := gotemplate.New()
	if !errors.Is(err, gotemplate.ErrNoSource) {
		t.Fatalf("New() error = %v, want ErrNoSource", err)
	}
}

func TestGoTemplateEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func assertGolden(t *testing.T, name, result, written string) {
	t.Helper()

	path := filepath.Join("testdata", name)
	if testsupport.WriteMaybeGolden(t, path, []byte(result)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, path)
	if diff := testsupport.CompareGolden(want, result); diff != "" {
		t.Fatalf("render template mismatch result (-want +got):\n%s", diff)
	}
	if diff := testsupport.CompareGolden(want, written); diff != "" {
		t.Fatalf("render template mismatch writer (-want +got):\n%s", diff)
	}
}

func subFS(t *testing.T) fs.FS {
	t.Helper()
	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return templatesFS
}

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(subFS(t))}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
