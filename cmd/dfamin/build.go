package main

import (
	"fmt"

	"github.com/nerode/dfa"
	"github.com/spf13/cobra"
)

var (
	buildStates      string
	buildAlphabet    string
	buildStart       string
	buildFinal       string
	buildTransitions string
	buildOutput      string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a canonical DFA definition from raw fields",
	Long: `Build assembles and validates a DFA from comma-separated field lists and
a transition table with one "STATE:SYMBOL=TARGET,SYMBOL=TARGET" entry per
state (entries separated by ';'), e.g.:

    dfamin build --states "S,T" --alphabet "a" --start S --final T \
        --transitions "S:a=T; T:a=T" -o machine.json

The result is written in canonical form to --output, or to stdout as JSON.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		transitions, err := parseTransitionTable(buildTransitions)
		if err != nil {
			return err
		}
		d, err := dfa.New(
			parseFields(buildStates),
			parseFields(buildAlphabet),
			transitions,
			buildStart,
			parseFields(buildFinal),
		)
		if err != nil {
			return fmt.Errorf("invalid DFA: %w", err)
		}
		if buildOutput != "" {
			return saveCanonical(buildOutput, d.ToCanonical())
		}
		return d.ToCanonical().EncodeJSON(cmd.OutOrStdout())
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildStates, "states", "", "comma-separated state names")
	buildCmd.Flags().StringVar(&buildAlphabet, "alphabet", "", "comma-separated input symbols")
	buildCmd.Flags().StringVar(&buildStart, "start", "", "start state")
	buildCmd.Flags().StringVar(&buildFinal, "final", "", "comma-separated final states")
	buildCmd.Flags().StringVar(&buildTransitions, "transitions", "", "transition table, one STATE:SYMBOL=TARGET,... entry per ';'-separated line")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "write the canonical form to this file (format chosen by extension)")
	rootCmd.AddCommand(buildCmd)
}
