package main

import (
	"fmt"

	"github.com/nerode/dfa"
	"github.com/spf13/cobra"
)

var minimizeOutput string

var minimizeCmd = &cobra.Command{
	Use:   "minimize FILE",
	Short: "Minimize a DFA definition",
	Long: `Minimize loads a canonical DFA definition, prunes unreachable states,
computes the coarsest Myhill-Nerode partition with the table-filling
algorithm, and prints the formal definitions of the original and the
minimized automaton. With --output the minimized automaton is also saved
in canonical form.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		d, err := loadDFA(args[0])
		if err != nil {
			return err
		}
		logger.Debug("loaded DFA", "file", args[0], "states", d.NumStates())

		minimized := dfa.Minimize(d)
		logger.Debug("minimized DFA", "classes", minimized.NumStates())

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "--- Original DFA ---")
		fmt.Fprint(out, d.FormalDefinition())
		fmt.Fprintln(out)
		fmt.Fprintln(out, "--- Minimized DFA ---")
		fmt.Fprint(out, minimized.FormalDefinition())

		if minimizeOutput != "" {
			if err := saveCanonical(minimizeOutput, minimized.ToCanonical()); err != nil {
				return fmt.Errorf("save %s: %w", minimizeOutput, err)
			}
		}
		return nil
	},
}

func init() {
	minimizeCmd.Flags().StringVarP(&minimizeOutput, "output", "o", "",
		"write the minimized DFA to this file (format chosen by extension)")
	rootCmd.AddCommand(minimizeCmd)
}
