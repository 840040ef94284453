// Package html renders validated inputs as HTML fragments through pongo2
// templates. TextInput is the delegated widget handed to a
// validated.Wrapper[template.HTML]; Compose adds the container and the error
// annotation; Stylesheet styles the annotation from theme tokens.
package html
