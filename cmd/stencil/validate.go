package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencilframe/stencil/pkg/stencil/descriptor"
)

// validateCmd checks a descriptor without generating anything.
var validateCmd = &cobra.Command{
	Use:   "validate <archetype.yaml>",
	Short: "Validate an archetype descriptor",
	Long: `Validate parses the descriptor, builds the archetype tree, and runs
the structural checks: node payloads, input options, default values,
and guard expression syntax. Nothing is generated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := descriptor.FromFile(args[0])
		if err != nil {
			return err
		}

		arch, err := doc.ToArchetype()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s is valid\n",
			successStyle.Render("ok:"), arch.Name(), faintStyle.Render(arch.Version()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
