/*
Package descriptor loads archetype descriptions from YAML or JSON files.

A descriptor declares the archetype's node tree. Each node entry selects
its kind with exactly one of the step, input, preset, or output keys,
and may carry an if guard and child nodes:

	name: rest-service
	version: "1.0"
	nodes:
	  - step: basics
	    nodes:
	      - input: app.name
	        type: text
	        prompt: "Application name?"
	      - input: security.tls
	        type: boolean
	        prompt: "Enable TLS?"
	        default: false
	  - preset: app.lang
	    value: go
	  - output:
	      templates:
	        - source: main.go.tmpl
	          target: cmd/${app.name}/main.go
	  - step: tls
	    if: "${security.tls} == true"
	    nodes:
	      - output:
	          files:
	            - source: certs/README.md
	              target: certs/README.md

Load and interpret:

	doc, err := descriptor.FromFile("archetype.yaml")
	if err != nil { ... }
	arch, err := doc.ToArchetype()
	if err != nil { ... }
	model, err := arch.Interpret(ctx, ...)
*/
package descriptor
