package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/fincalc/internal/engine"
	"github.com/iwvelando/fincalc/pkg/format"
	"github.com/spf13/cobra"
)

func newWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "words <amount>",
		Short:   "Spell an amount using the Indian numbering scale",
		Example: "  fincalc words 1234567",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, format.INR(amount))
			fmt.Fprintln(out, format.NumberToWords(amount))
			return nil
		},
	}
}

func newCalculatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calculators",
		Short: "List the available calculator types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			typeStyle := lipgloss.NewStyle().Bold(true).Width(16)
			for _, d := range engine.Calculators() {
				fmt.Fprintln(cmd.OutOrStdout(), typeStyle.Render(d.Type)+d.Description)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the fincalc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
