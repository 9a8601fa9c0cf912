package dfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Minimize Returns the unique minimal automaton accepting the same language
// as d, computed with the table-filling algorithm. Unreachable states are
// pruned first and never appear in the output. Output states are freshly
// named q0, q1, ... in a deterministic order, so minimizing the same
// automaton twice yields identical results. The input must be valid
// (Minimize performs no validation) and is left unchanged.
func Minimize(d *DFA) *DFA {
	pruned := d.PruneUnreachable()

	// Fixed index per state; all pair bookkeeping below is in index space.
	states := pruned.States()
	pos := make(map[string]int, len(states))
	for i, s := range states {
		pos[s] = i
	}
	numStates := len(states)
	symbols := pruned.Alphabet()

	table := newPairTable(numStates)

	// Base case: a final and a non-final state are distinguished by the
	// empty string.
	for i := 0; i < numStates; i++ {
		for j := i + 1; j < numStates; j++ {
			if pruned.IsFinal(states[i]) != pruned.IsFinal(states[j]) {
				table.mark(i, j)
			}
		}
	}

	// Closure: a pair is distinguishable if some symbol leads it to an
	// already-marked pair. Identical targets never force a mark. Loop until
	// a full pass marks nothing; each pass marks at least one new pair or
	// halts, so this terminates.
	changed := true
	for changed {
		changed = false
		for i := 0; i < numStates; i++ {
			for j := i + 1; j < numStates; j++ {
				if table.marked(i, j) {
					continue
				}
				for _, symbol := range symbols {
					next1, _ := pruned.Next(states[i], symbol)
					next2, _ := pruned.Next(states[j], symbol)
					row, col := pos[next1], pos[next2]
					if row > col {
						row, col = col, row
					}
					if row != col && table.marked(row, col) {
						table.mark(i, j)
						changed = true
						break
					}
				}
			}
		}
	}

	// Partition: scan in index order, greedily grouping every higher-indexed
	// state whose pair with the representative is unmarked.
	// Sound only on a fully closed table, where "unmarked" is transitive.
	grouped := bitset.New(uint(numStates))
	blocks := make([][]string, 0, numStates)
	for i := 0; i < numStates; i++ {
		if grouped.Test(uint(i)) {
			continue
		}
		block := []string{states[i]}
		grouped.Set(uint(i))
		for j := i + 1; j < numStates; j++ {
			if !table.marked(i, j) {
				block = append(block, states[j])
				grouped.Set(uint(j))
			}
		}
		blocks = append(blocks, block)
	}

	// Reconstruction: one output state per block, named by block order. Any
	// member serves as representative since all members behave identically;
	// the first (lowest-indexed) one is used.
	blockOf := make(map[string]int, numStates)
	names := make([]string, len(blocks))
	for b, block := range blocks {
		names[b] = fmt.Sprintf("q%d", b)
		for _, state := range block {
			blockOf[state] = b
		}
	}

	minimized := &DFA{
		states:      make(map[string]struct{}, len(blocks)),
		alphabet:    toSet(symbols),
		transitions: make(map[string]map[string]string, len(blocks)),
		start:       names[blockOf[pruned.start]],
		finals:      make(map[string]struct{}),
	}
	for b, block := range blocks {
		minimized.states[names[b]] = struct{}{}
		if pruned.IsFinal(block[0]) {
			minimized.finals[names[b]] = struct{}{}
		}
		row := make(map[string]string, len(symbols))
		for _, symbol := range symbols {
			target, _ := pruned.Next(block[0], symbol)
			row[symbol] = names[blockOf[target]]
		}
		minimized.transitions[names[b]] = row
	}
	return minimized
}

// pairTable Marks distinguishability of unordered state pairs (i, j), i < j,
// packed into a flat triangular bitset.
type pairTable struct {
	numStates int
	bits      *bitset.BitSet
}

func newPairTable(numStates int) *pairTable {
	return &pairTable{
		numStates: numStates,
		bits:      bitset.New(uint(numStates * (numStates - 1) / 2)),
	}
}

// index Requires i < j.
func (t *pairTable) index(i, j int) uint {
	return uint(i*(2*t.numStates-i-1)/2 + (j - i - 1))
}

func (t *pairTable) mark(i, j int) {
	t.bits.Set(t.index(i, j))
}

func (t *pairTable) marked(i, j int) bool {
	return t.bits.Test(t.index(i, j))
}
