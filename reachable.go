package dfa

import "github.com/bits-and-blooms/bitset"

// PruneUnreachable Returns a new automaton restricted to the states reachable
// from the start state. Reachability is computed by a breadth-first walk that
// follows every alphabet symbol from each visited state. The alphabet and
// start state carry over unchanged; final states and the transition table are
// intersected with the reachable set. The receiver must already be valid:
// traversal over a partial transition function is unsound, so callers
// validate first.
func (d *DFA) PruneUnreachable() *DFA {
	states := d.States()
	pos := make(map[string]int, len(states))
	for i, s := range states {
		pos[s] = i
	}
	symbols := d.Alphabet()

	seen := bitset.New(uint(len(states)))
	seen.Set(uint(pos[d.start]))
	workList := []string{d.start}

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		for _, symbol := range symbols {
			next, ok := d.Next(state, symbol)
			if !ok {
				continue
			}
			if seen.Test(uint(pos[next])) == false {
				seen.Set(uint(pos[next]))
				workList = append(workList, next)
			}
		}
	}

	pruned := &DFA{
		states:      make(map[string]struct{}, seen.Count()),
		alphabet:    toSet(symbols),
		transitions: make(map[string]map[string]string, seen.Count()),
		start:       d.start,
		finals:      make(map[string]struct{}),
	}
	for i, state := range states {
		if !seen.Test(uint(i)) {
			continue
		}
		pruned.states[state] = struct{}{}
		if d.IsFinal(state) {
			pruned.finals[state] = struct{}{}
		}
		row := make(map[string]string, len(symbols))
		for symbol, target := range d.transitions[state] {
			row[symbol] = target
		}
		pruned.transitions[state] = row
	}
	return pruned
}
