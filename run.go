package dfa

// Accepts Runs the automaton over the given input sequence, one symbol per
// element, and reports whether it ends in an accepting state. A symbol with
// no outgoing transition (outside the alphabet) rejects immediately. The
// empty input is accepted iff the start state is accepting.
func (d *DFA) Accepts(input []string) bool {
	state := d.start
	for _, symbol := range input {
		next, ok := d.Next(state, symbol)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsFinal(state)
}
