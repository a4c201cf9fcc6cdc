package stencil

import (
	"context"

	"github.com/stencilframe/stencil/pkg/stencil/expr"
)

// Shared fixtures used across tests

// testCtx creates a pass context with a fixed run ID.
func testCtx(opts ...ContextOption) Context {
	opts = append([]ContextOption{WithRunID("test-run")}, opts...)
	return NewContext(context.Background(), opts...)
}

// webServiceArchetype builds a small archetype exercising every node
// kind: a guarded TLS branch, a preset, and an unconditional output.
func webServiceArchetype() *Archetype {
	return NewArchetype("web-service", "1.0",
		Step("basics",
			Input("app.name", InputSpec{
				Type:   InputText,
				Prompt: "Application name?",
			}),
			Input("security.tls", InputSpec{
				Type:    InputBoolean,
				Prompt:  "Enable TLS?",
				Default: literalPtr(expr.Bool(false)),
			}),
		),
		Preset("app.lang", expr.String("go")),
		Output(OutputSpec{
			Templates: []FileRule{
				{Source: "main.go.tmpl", Target: "cmd/${app.name}/main.go"},
			},
		}),
		Step("tls",
			Preset("security.port", expr.String("443")),
			Output(OutputSpec{
				Files: []FileRule{
					{Source: "certs/README.md", Target: "certs/README.md"},
				},
			}),
		).When(`${security.tls} == true`),
	)
}

// literalPtr returns a pointer to the literal, for InputSpec defaults.
func literalPtr(l expr.Literal) *expr.Literal {
	return &l
}
