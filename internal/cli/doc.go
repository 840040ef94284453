// Package cli holds the exit code conventions of the validatedinput command.
package cli
