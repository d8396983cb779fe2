package main

import (
	"fmt"

	"github.com/biomodel/reactor/internal/config"
	"github.com/biomodel/reactor/internal/logging"
	"github.com/biomodel/reactor/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "validate <model-file>",
		Short:   "Assemble a model document and report warnings or errors",
		Example: `  reactor validate model.xml`,
		Args:    cobra.ExactArgs(1),
		RunE:    runValidate,
	}
	rootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	doc, importWarnings, err := loadDocument(path)
	if err != nil {
		return err
	}

	m, err := model.Assemble(doc)
	if err != nil {
		return fmt.Errorf("assembling %s: %w", path, err)
	}

	warnings := append(append([]string{}, importWarnings...), m.Warnings()...)
	logging.LogWarnings(logger, path, warnings)

	cfg := config.Load()
	if cfg.Strict && len(warnings) > 0 {
		return fmt.Errorf("%s: %d warning(s) treated as errors under --strict", path, len(warnings))
	}

	fmt.Printf("%s: ok (%d species, %d parameters, %d reactions, %d rules, %d warnings)\n",
		path, len(m.GetSpeciesList()), len(m.GetParamList()), len(m.Reactions()), len(m.Rules()), len(warnings))
	return nil
}
