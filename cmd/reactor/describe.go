package main

import (
	"fmt"

	"github.com/biomodel/reactor/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe <model-file>",
		Short:   "Print the assembled model's symbol tables and reactions",
		Example: `  reactor describe model.xml`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	path := args[0]
	doc, _, err := loadDocument(path)
	if err != nil {
		return err
	}

	m, err := model.Assemble(doc)
	if err != nil {
		return fmt.Errorf("assembling %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "species (%d):\n", len(m.GetSpeciesList()))
	for i, name := range m.GetSpeciesList() {
		fmt.Fprintf(out, "  [%d] %s = %g\n", i, name, m.GetSpeciesValues()[i])
	}

	fmt.Fprintf(out, "parameters (%d):\n", len(m.GetParamList()))
	for i, name := range m.GetParamList() {
		fmt.Fprintf(out, "  [%d] %s = %g\n", i, name, m.GetParamsValues()[i])
	}

	fmt.Fprintf(out, "reactions (%d):\n", len(m.Reactions()))
	update := m.GetUpdateArray()
	delayUpdate := m.GetDelayUpdateArray()
	for ri := range m.Reactions() {
		fmt.Fprintf(out, "  [%d] update=%s delayed=%s\n", ri, columnOf(update, ri), columnOf(delayUpdate, ri))
	}

	fmt.Fprintf(out, "rules (%d):\n", len(m.Rules()))
	for i, r := range m.Rules() {
		target := "species"
		if r.TargetsParameter() {
			target = "parameter"
		}
		fmt.Fprintf(out, "  [%d] assigns a %s\n", i, target)
	}

	return nil
}

func columnOf(matrix [][]int, col int) string {
	out := make([]int, len(matrix))
	for i, row := range matrix {
		out[i] = row[col]
	}
	return fmt.Sprint(out)
}
