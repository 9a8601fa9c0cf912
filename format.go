package dfa

import (
	"fmt"
	"strings"
)

// FormalDefinition Renders the automaton as a human-readable formal five-tuple
// listing. Output is deterministic: states and final states are sorted, the
// transition table is ordered by state then symbol. Intended for any display
// surface; the core produces it so the content is testable without a UI.
func (d *DFA) FormalDefinition() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Q (states)       = {%s}\n", strings.Join(d.States(), ", "))
	fmt.Fprintf(&b, "Σ (alphabet)     = {%s}\n", strings.Join(d.Alphabet(), ", "))
	b.WriteString("δ (transitions):\n")
	symbols := d.Alphabet()
	for _, state := range d.States() {
		for _, symbol := range symbols {
			if target, ok := d.Next(state, symbol); ok {
				fmt.Fprintf(&b, "    %s --%s--> %s\n", state, symbol, target)
			}
		}
	}
	fmt.Fprintf(&b, "q₀ (start state) = %s\n", d.start)
	fmt.Fprintf(&b, "F (final states) = {%s}\n", strings.Join(d.FinalStates(), ", "))

	return b.String()
}
