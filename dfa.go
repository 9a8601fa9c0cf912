// Package dfa implements deterministic finite automata over named states and
// symbols: construction with structural validation, unreachable-state pruning,
// table-filling minimization, and a canonical serialized form.
package dfa

import "slices"

// DFA Represents a deterministic finite automaton. States and input symbols
// are arbitrary non-empty strings. A DFA is an immutable value: every
// transforming operation (PruneUnreachable, Minimize) returns a new,
// independent automaton and leaves its input untouched, so independent
// operations on the same value may run concurrently with no coordination.
// Use New (or FromCanonical) to build a validated instance.
type DFA struct {
	states      map[string]struct{}
	alphabet    map[string]struct{}
	transitions map[string]map[string]string
	start       string
	finals      map[string]struct{}
}

// New Builds a DFA from raw field values and validates it. All inputs are
// copied, so the caller may reuse or mutate its slices and maps afterwards.
// Returns a *ValidationError describing the first structural violation in
// lexicographic state/symbol order, or the validated automaton.
func New(states, alphabet []string, transitions map[string]map[string]string, start string, finals []string) (*DFA, error) {
	d := &DFA{
		states:      toSet(states),
		alphabet:    toSet(alphabet),
		transitions: copyTransitions(transitions),
		start:       start,
		finals:      toSet(finals),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate Checks that the automaton is structurally complete: states
// non-empty, start state and final states members of the state set, and the
// transition function total over states × alphabet with in-range targets.
// Checks run in a fixed order (states, then symbols, lexicographically) so
// the reported violation is reproducible. Never mutates the automaton.
func (d *DFA) Validate() error {
	if len(d.states) == 0 {
		return errEmptyStates()
	}
	if _, ok := d.states[d.start]; !ok {
		return errUnknownStart(d.start)
	}
	for _, s := range sorted(d.finals) {
		if _, ok := d.states[s]; !ok {
			return errUnknownFinal(s)
		}
	}
	symbols := sorted(d.alphabet)
	for _, state := range sorted(d.states) {
		row, ok := d.transitions[state]
		if !ok {
			return errMissingRow(state)
		}
		for _, symbol := range symbols {
			target, ok := row[symbol]
			if !ok {
				return errMissingEntry(state, symbol)
			}
			if _, ok := d.states[target]; !ok {
				return errInvalidTarget(state, symbol, target)
			}
		}
	}
	return nil
}

// States Returns the state identifiers, lexicographically sorted.
func (d *DFA) States() []string {
	return sorted(d.states)
}

// Alphabet Returns the input symbols, lexicographically sorted.
func (d *DFA) Alphabet() []string {
	return sorted(d.alphabet)
}

// StartState Returns the start state identifier.
func (d *DFA) StartState() string {
	return d.start
}

// FinalStates Returns the accepting states, lexicographically sorted.
func (d *DFA) FinalStates() []string {
	return sorted(d.finals)
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return len(d.states)
}

// IsFinal Reports whether state is an accepting state.
func (d *DFA) IsFinal(state string) bool {
	_, ok := d.finals[state]
	return ok
}

// Next Performs one transition lookup. The second return is false when no
// entry exists for the pair, which on a validated automaton only happens for
// an unknown state or a symbol outside the alphabet.
func (d *DFA) Next(state, symbol string) (string, bool) {
	row, ok := d.transitions[state]
	if !ok {
		return "", false
	}
	target, ok := row[symbol]
	return target, ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func copyTransitions(transitions map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(transitions))
	for state, row := range transitions {
		cp := make(map[string]string, len(row))
		for symbol, target := range row {
			cp[symbol] = target
		}
		out[state] = cp
	}
	return out
}

func sorted(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
