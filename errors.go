package dfa

import "fmt"

// ValidationError Describes the first structural violation found while
// validating a DFA. State, Symbol and Target identify the offending pieces
// where applicable; zero values mean the field played no part in the
// violation (e.g. an empty state set names nothing).
type ValidationError struct {
	State  string
	Symbol string
	Target string
	reason string
}

func (e *ValidationError) Error() string {
	return e.reason
}

func errEmptyStates() *ValidationError {
	return &ValidationError{reason: "states set cannot be empty"}
}

func errUnknownStart(state string) *ValidationError {
	return &ValidationError{
		State:  state,
		reason: fmt.Sprintf("start state %q is not in the set of states", state),
	}
}

func errUnknownFinal(state string) *ValidationError {
	return &ValidationError{
		State:  state,
		reason: fmt.Sprintf("final state %q is not in the set of states", state),
	}
}

func errMissingRow(state string) *ValidationError {
	return &ValidationError{
		State:  state,
		reason: fmt.Sprintf("missing transitions for state %q", state),
	}
}

func errMissingEntry(state, symbol string) *ValidationError {
	return &ValidationError{
		State:  state,
		Symbol: symbol,
		reason: fmt.Sprintf("missing transition for state %q on symbol %q", state, symbol),
	}
}

func errInvalidTarget(state, symbol, target string) *ValidationError {
	return &ValidationError{
		State:  state,
		Symbol: symbol,
		Target: target,
		reason: fmt.Sprintf("transition from %q on %q leads to an invalid state %q", state, symbol, target),
	}
}
