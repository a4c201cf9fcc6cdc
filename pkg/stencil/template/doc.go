/*
Package template expands ${dotted.path} placeholders in scaffold sources.

The renderer runs every template body and every target path through an
Expander before writing, substituting values from the pass's resolved
context. Placeholder names use the same dotted-path syntax as the guard
expression language, so a value bound once works in guards, paths, and
file bodies alike.

Only the ${path} form is recognized. Bare $name text passes through
unchanged, because scaffolded files (shell scripts, CI configs) routinely
contain their own runtime variables.

Missing variables are handled per the configured MissingAction:

	MissingKeep    keep the placeholder as-is (default)
	MissingEmpty   replace with an empty string
	MissingError   fail with *UndefinedVariableError

Example:

	vars := map[string]any{"app.name": "shop", "app.port": "8080"}
	out := template.Expand("server ${app.name} listens on ${app.port}", vars)
	// "server shop listens on 8080"
*/
package template
