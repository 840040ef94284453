package widgets

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-validatedinput/pkg/validated"
)

// Built-in widget identifiers. Each maps to a template of the same name in
// the HTML renderer.
const (
	WidgetText     = "text"
	WidgetPassword = "password"
	WidgetEmail    = "email"
	WidgetTextarea = "textarea"
	WidgetSelect   = "select"
)

// AttrWidget names a widget explicitly and bypasses the matchers.
const AttrWidget = "widget"

// Matcher decides whether a widget should render the supplied props.
type Matcher func(props validated.Props) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry picks the widget for forwarded props. Higher priority wins; ties
// fall back to registration order. Resolve falls back to WidgetText.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher. The latest registration of a name wins ties.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget for props. An explicit "widget" attr is honoured
// before matcher evaluation.
func (r *Registry) Resolve(props validated.Props) string {
	if explicit := strings.TrimSpace(props.StringAttr(AttrWidget)); explicit != "" {
		return explicit
	}
	if r == nil {
		return WidgetText
	}
	r.mu.RLock()
	rules := slices.Clone(r.rules)
	r.mu.RUnlock()

	slices.SortStableFunc(rules, func(a, b rule) int {
		if a.priority == b.priority {
			return a.order - b.order
		}
		return b.priority - a.priority
	})
	for _, entry := range rules {
		if entry.match(props) {
			return entry.name
		}
	}
	return WidgetText
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetSelect, 90, func(props validated.Props) bool {
		return len(Options(props)) > 0
	})

	r.Register(WidgetTextarea, 80, func(props validated.Props) bool {
		if truthy(props.Attr("multiline")) {
			return true
		}
		rows, ok := props.Attr("rows")
		return ok && rows != nil
	})

	r.Register(WidgetPassword, 70, func(props validated.Props) bool {
		if strings.EqualFold(props.StringAttr("type"), "password") {
			return true
		}
		return truthy(props.Attr("secret"))
	})

	r.Register(WidgetEmail, 60, func(props validated.Props) bool {
		return strings.EqualFold(props.StringAttr("type"), "email") ||
			strings.EqualFold(props.StringAttr("inputMode"), "email")
	})
}

// Options reads the "options" attr as a list of strings.
func Options(props validated.Props) []string {
	raw, ok := props.Attr("options")
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func truthy(value any, ok bool) bool {
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	}
	return false
}
