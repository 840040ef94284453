// Package tui hosts a validated input in a terminal prompt loop built on
// survey. The prompt kind (input, password, textarea, select) is picked from
// the forwarded attrs through the widget registry.
package tui
