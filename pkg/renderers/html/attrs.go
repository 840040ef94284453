package html

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-validatedinput/pkg/validated"
	"github.com/goliatone/go-validatedinput/pkg/widgets"
)

// Attrs the widget templates consume themselves rather than emit verbatim.
var consumedAttrs = map[string]struct{}{
	widgets.AttrWidget: {},
	"label":            {},
	"hint":             {},
	"options":          {},
	"multiline":        {},
	"secret":           {},
	"type":             {},
	"class":            {},
}

var attrName = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

type htmlAttr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Bare  bool   `json:"bare"`
}

// htmlAttrs converts forwarded attrs into element attributes sorted by name.
// Booleans render bare (true) or not at all (false). Event handler attributes
// and names that are not valid HTML are skipped.
func htmlAttrs(props validated.Props) []htmlAttr {
	out := make([]htmlAttr, 0, len(props.Attrs))
	for name, value := range props.Attrs {
		if _, ok := consumedAttrs[name]; ok {
			continue
		}
		if !attrName.MatchString(name) || strings.HasPrefix(strings.ToLower(name), "on") {
			continue
		}
		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if v {
				out = append(out, htmlAttr{Name: name, Bare: true})
			}
		case string:
			out = append(out, htmlAttr{Name: name, Value: v})
		case fmt.Stringer:
			out = append(out, htmlAttr{Name: name, Value: v.String()})
		default:
			out = append(out, htmlAttr{Name: name, Value: fmt.Sprint(v)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
