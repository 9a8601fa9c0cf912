package main

import (
	"errors"
	"fmt"

	"github.com/nerode/dfa"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a DFA definition for structural completeness",
	Long: `Validate loads a canonical DFA definition and checks that the start state
and final states are members of the state set and that the transition
function is total over every state and symbol.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCanonical(args[0])
		if err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}
		d, err := dfa.FromCanonical(c)
		if err != nil {
			var verr *dfa.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("invalid DFA: %s", verr)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "DFA is valid: %d states, %d symbols.\n",
			d.NumStates(), len(d.Alphabet()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
