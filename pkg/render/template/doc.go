// Package template defines the template engine contract used by renderers.
// The pongo2-backed implementation lives in the gotemplate subpackage.
package template
