// Package theme resolves the style tokens used by the validation error
// annotation (labelFontSize, labelLineHeight, errorColor) from go-theme
// manifests and renders the annotation stylesheet.
package theme
