package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stencilframe/stencil/pkg/stencil"
	"github.com/stencilframe/stencil/pkg/stencil/descriptor"
	"github.com/stencilframe/stencil/pkg/stencil/history"
	"github.com/stencilframe/stencil/pkg/stencil/observability"
)

var (
	genTarget      string
	genSource      string
	genAnswers     []string
	genDefaults    bool
	genNonInteract bool
	genHistoryDB   string
	genReplay      string
	genMetrics     bool
	genTracing     bool
)

// generateCmd renders a project from a descriptor.
var generateCmd = &cobra.Command{
	Use:   "generate <archetype.yaml>",
	Short: "Generate a project from an archetype descriptor",
	Long: `Generate interprets the archetype descriptor, resolving inputs from
--set answers, declared defaults, and interactive prompts, then renders
the resulting file directives into the target directory.

Scaffold sources (template bodies and verbatim files) are read relative
to the descriptor's directory unless --source is given.`,
	Example: `  # Interactive generation
  stencil generate archetype.yaml --target ./out

  # Batch generation with pre-supplied answers
  stencil generate archetype.yaml --target ./out \
    --set app.name=shop --set security.tls=true --defaults --non-interactive

  # Record answers for later replay
  stencil generate archetype.yaml --target ./out --history ./answers.db

  # Replay a recorded run
  stencil generate archetype.yaml --target ./out \
    --history ./answers.db --replay <run-id>`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genTarget, "target", "t", ".", "target directory for generated files")
	generateCmd.Flags().StringVar(&genSource, "source", "", "scaffold source directory (default: descriptor directory)")
	generateCmd.Flags().StringArrayVarP(&genAnswers, "set", "s", nil, "pre-supplied answer as path=value (repeatable)")
	generateCmd.Flags().BoolVar(&genDefaults, "defaults", false, "resolve unanswered inputs from declared defaults")
	generateCmd.Flags().BoolVar(&genNonInteract, "non-interactive", false, "never prompt; fail on unanswered inputs")
	generateCmd.Flags().StringVar(&genHistoryDB, "history", "", "SQLite file for answer history")
	generateCmd.Flags().StringVar(&genReplay, "replay", "", "run ID to replay answers from (requires --history)")
	generateCmd.Flags().BoolVar(&genMetrics, "metrics", false, "record OpenTelemetry metrics")
	generateCmd.Flags().BoolVar(&genTracing, "tracing", false, "record OpenTelemetry traces")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	descriptorPath := args[0]

	doc, err := descriptor.FromFile(descriptorPath)
	if err != nil {
		return err
	}
	arch, err := doc.ToArchetype()
	if err != nil {
		return err
	}

	answers, err := parseAnswers(genAnswers)
	if err != nil {
		return err
	}

	ctxOpts := []stencil.ContextOption{}
	var store history.Store
	if genHistoryDB != "" {
		store, err = history.NewSQLiteStore(genHistoryDB)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()
		ctxOpts = append(ctxOpts, stencil.WithHistory(store))
	}

	if genReplay != "" {
		if store == nil {
			return fmt.Errorf("--replay requires --history")
		}
		replayed, err := stencil.ReplayAnswers(store, genReplay)
		if err != nil {
			return fmt.Errorf("replay run %s: %w", genReplay, err)
		}
		// Explicit --set answers win over replayed ones.
		for path, value := range answers {
			replayed[path] = value
		}
		answers = replayed
	}

	ctx := stencil.NewContext(context.Background(), ctxOpts...)

	passOpts := []stencil.PassOption{stencil.WithAnswers(answers)}
	if genDefaults {
		passOpts = append(passOpts, stencil.WithDefaults())
	}
	if !genNonInteract {
		passOpts = append(passOpts, stencil.WithPrompter(stencil.NewTerminalPrompter()))
	}
	if genMetrics {
		passOpts = append(passOpts, stencil.WithMetrics(observability.NewMetricsRecorder()))
	}
	if genTracing {
		passOpts = append(passOpts, stencil.WithTracing())
	}

	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(arch.Name())+faintStyle.Render(" "+arch.Version()))

	model, err := arch.Interpret(ctx, passOpts...)
	if err != nil {
		return err
	}

	sourceDir := genSource
	if sourceDir == "" {
		sourceDir = filepath.Dir(descriptorPath)
	}

	renderOpts := []stencil.RenderOption{}
	if genMetrics {
		renderOpts = append(renderOpts, stencil.WithRenderMetrics(observability.NewMetricsRecorder()))
	}

	report, err := stencil.NewRenderer(sourceDir, genTarget, renderOpts...).Render(ctx, model)
	if err != nil {
		return err
	}

	for _, path := range report.Written {
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("  create ")+path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s %d files written (run %s)\n",
		successStyle.Render("done:"), len(report.Written), model.RunID)
	return nil
}

// parseAnswers splits repeated path=value flags into an answer map.
func parseAnswers(pairs []string) (map[string]any, error) {
	answers := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		path, value, ok := strings.Cut(pair, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid --set %q: want path=value", pair)
		}
		answers[path] = value
	}
	return answers, nil
}
