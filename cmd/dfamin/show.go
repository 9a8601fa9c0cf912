package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:           "show FILE",
	Short:         "Print the formal definition of a DFA",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDFA(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), d.FormalDefinition())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
