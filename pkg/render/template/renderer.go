package template

import (
	"io"
)

// TemplateRenderer is the seam the HTML renderer draws widgets through.
// Names resolve against the engine's loaders; GlobalContext seeds values
// visible to every template.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
