package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

// ClassNames joins a class list (string or slice) with an optional extra
// class, dropping blanks and duplicates. Register it with WithTemplateFunc.
func ClassNames(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var parts []string
	if in.CanSlice() && !in.IsString() {
		in.Iterate(func(_, _ int, key, _ *pongo2.Value) bool {
			parts = append(parts, strings.Fields(key.String())...)
			return true
		}, func() {})
	} else {
		parts = strings.Fields(in.String())
	}
	if param != nil && !param.IsNil() {
		parts = append(parts, strings.Fields(param.String())...)
	}

	seen := make(map[string]struct{}, len(parts))
	out := parts[:0]
	for _, part := range parts {
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return pongo2.AsValue(strings.Join(out, " ")), nil
}
