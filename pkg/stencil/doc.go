/*
Package stencil provides a declarative project-scaffolding engine.

# Overview

stencil is a Go library for generating project skeletons from archetype
descriptions. An archetype is a tree of nodes (steps, inputs, presets,
outputs) that a single interpretation pass walks top-down, resolving
inputs into a typed context and collecting file directives into an
output model. Any node can carry a guard expression; a guarded node and
its whole subtree participate only when the guard evaluates true
against the values resolved so far.

The library provides:
  - A typed guard expression language (booleans, strings, string lists)
  - A single-pass tree interpreter with answer precedence rules
  - A file renderer with ${dotted.path} template expansion
  - Answer history for replaying past runs
  - OpenTelemetry integration for observability

# Basic Usage

Build an archetype, interpret it, render the model:

	arch := stencil.NewArchetype("rest-service", "1.0",
	    stencil.Input("app.name", stencil.InputSpec{
	        Type:   stencil.InputText,
	        Prompt: "Application name?",
	    }),
	    stencil.Input("security.tls", stencil.InputSpec{
	        Type:   stencil.InputBoolean,
	        Prompt: "Enable TLS?",
	    }),
	    stencil.Output(stencil.OutputSpec{
	        Templates: []stencil.FileRule{
	            {Source: "main.go.tmpl", Target: "cmd/${app.name}/main.go"},
	        },
	    }),
	    stencil.Output(stencil.OutputSpec{
	        Files: []stencil.FileRule{
	            {Source: "certs/README.md", Target: "certs/README.md"},
	        },
	    }).When(`${security.tls} == true`),
	)

	ctx := stencil.NewContext(context.Background())
	model, err := arch.Interpret(ctx,
	    stencil.WithPrompter(stencil.NewTerminalPrompter()))
	if err != nil {
	    log.Fatal(err)
	}

	renderer := stencil.NewRenderer("./archetype", "./out")
	if _, err := renderer.Render(ctx, model); err != nil {
	    log.Fatal(err)
	}

# Guards

Guards are expressions over the context accumulated so far. A node's
guard can only reference paths bound by nodes walked before it; an
unresolved path, a type mismatch, or a non-boolean result aborts the
pass. See the expr subpackage for the expression language.

# Answer Precedence

Inputs resolve from the first available source:

 1. answers supplied with WithAnswers
 2. declared defaults, when WithDefaults is set
 3. the prompter, when one is configured
 4. declared defaults, as a final fallback

An input with no source fails the pass with ErrUnanswered.

# Replaying Runs

With a history store on the context, each successful pass persists its
resolved answers under the run ID:

	store, _ := history.NewSQLiteStore("./answers.db")
	defer store.Close()

	ctx := stencil.NewContext(context.Background(), stencil.WithHistory(store))
	model, err := arch.Interpret(ctx, stencil.WithPrompter(prompter))

	// Later, replay without prompting.
	answers, _ := stencil.ReplayAnswers(store, model.RunID)
	model2, err := arch.Interpret(stencil.NewContext(context.Background()),
	    stencil.WithAnswers(answers))

# Observability

Metrics and tracing are opt-in and default to no-ops:

	model, err := arch.Interpret(ctx,
	    stencil.WithMetrics(observability.NewMetricsRecorder()),
	    stencil.WithTracing())
*/
package stencil
