package main

import (
	"github.com/nerode/dfa"
	"github.com/spf13/cobra"
)

// exampleCanonical returns the classic 8-state example: D is unreachable and
// the minimal automaton has 5 states.
func exampleCanonical() *dfa.Canonical {
	return &dfa.Canonical{
		States:   []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		Alphabet: []string{"0", "1"},
		Transitions: map[string]map[string]string{
			"A": {"0": "B", "1": "F"},
			"B": {"0": "G", "1": "C"},
			"C": {"0": "A", "1": "C"},
			"D": {"0": "C", "1": "G"},
			"E": {"0": "H", "1": "F"},
			"F": {"0": "C", "1": "G"},
			"G": {"0": "G", "1": "E"},
			"H": {"0": "G", "1": "C"},
		},
		StartState:  "A",
		FinalStates: []string{"C"},
	}
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a built-in example DFA in canonical JSON",
	Long: `Example prints a ready-made DFA definition to try the other commands
against, e.g.:

    dfamin example > example.json
    dfamin minimize example.json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exampleCanonical().EncodeJSON(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
