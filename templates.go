// Package validatedinput is the module root. The wrapper lives in
// pkg/validated; renderers live under pkg/renderers.
package validatedinput

import (
	"io/fs"

	"github.com/goliatone/go-validatedinput/pkg/renderers/html"
	"github.com/goliatone/go-validatedinput/pkg/theme"
)

// EmbeddedTemplates exposes the built-in HTML widget templates so callers can
// copy or extend them and pass them back through html.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// DefaultStylesheet returns the error annotation stylesheet for the default
// tokens, scoped to the default container class.
func DefaultStylesheet() string {
	return theme.Stylesheet(theme.Defaults(), "."+html.DefaultContainerClass)
}
