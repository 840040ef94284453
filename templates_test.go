package validatedinput

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedTemplates(t *testing.T) {
	for _, name := range []string{"text.tmpl", "password.tmpl", "email.tmpl", "textarea.tmpl", "select.tmpl", "container.tmpl", "page.tmpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected embedded template %s: %v", name, err)
		}
	}
}

func TestDefaultStylesheet(t *testing.T) {
	css := DefaultStylesheet()
	if !strings.HasPrefix(css, ".validated-input .error {") {
		t.Fatalf("unexpected stylesheet %q", css)
	}
}
