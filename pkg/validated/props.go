package validated

import (
	"context"
	"fmt"
	"maps"
)

// Reserved prop names owned by the wrapper. They are never forwarded from
// Config.Attrs to the delegated widget.
const (
	PropValue    = "value"
	PropIsError  = "isError"
	PropOnChange = "onChange"
)

// Props is the capability set handed to the delegated widget on every render.
// Attrs carries every extra configuration key unchanged.
type Props struct {
	Value    string
	IsError  bool
	OnChange func(value string)
	Attrs    map[string]any
}

// Attr returns a forwarded attribute.
func (p Props) Attr(name string) (any, bool) {
	if p.Attrs == nil {
		return nil, false
	}
	v, ok := p.Attrs[name]
	return v, ok
}

// StringAttr returns a forwarded attribute formatted as a string, or "" when
// the attribute is missing.
func (p Props) StringAttr(name string) string {
	v, ok := p.Attr(name)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Component is the delegated widget. T is whatever the host renders into:
// HTML fragments, terminal strings, virtual nodes.
type Component[T any] interface {
	Render(ctx context.Context, props Props) (T, error)
}

// ComponentFunc adapts a function to Component.
type ComponentFunc[T any] func(ctx context.Context, props Props) (T, error)

// Render implements Component.
func (f ComponentFunc[T]) Render(ctx context.Context, props Props) (T, error) {
	return f(ctx, props)
}

// Annotation is the inline error rendered next to the widget.
type Annotation struct {
	Description string
}

// View is the output of a wrapper render: the delegated widget plus the
// optional error annotation.
type View[T any] struct {
	Widget    T
	ClassName string
	Error     *Annotation
}

// HasError reports whether the view carries an error annotation.
func (v View[T]) HasError() bool {
	return v.Error != nil
}

func forwardAttrs(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for key, value := range attrs {
		switch key {
		case PropValue, PropIsError, PropOnChange:
			continue
		}
		out[key] = value
	}
	return out
}

func cloneAttrs(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return map[string]any{}
	}
	return maps.Clone(attrs)
}
