package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// allInputs enumerates every input sequence over symbols up to maxLen,
// including the empty sequence.
func allInputs(symbols []string, maxLen int) [][]string {
	inputs := [][]string{{}}
	frontier := [][]string{{}}
	for i := 0; i < maxLen; i++ {
		next := make([][]string, 0, len(frontier)*len(symbols))
		for _, prefix := range frontier {
			for _, symbol := range symbols {
				input := append(append([]string{}, prefix...), symbol)
				next = append(next, input)
			}
		}
		inputs = append(inputs, next...)
		frontier = next
	}
	return inputs
}

func TestMinimize(t *testing.T) {
	t.Run("testExampleClassCount", func(t *testing.T) {
		d := newExample(t)
		minimized := Minimize(d)

		assert.Equal(t, 5, minimized.NumStates())
		assert.Nil(t, minimized.Validate())
		// The input is untouched.
		assert.Equal(t, 8, d.NumStates())
	})

	t.Run("testExampleStructure", func(t *testing.T) {
		// Reachable states in index order: A B C E F G H. The classes are
		// {A,E} {B,H} {C} {F} {G}, named q0..q4 by lowest member.
		minimized := Minimize(newExample(t))

		want := &Canonical{
			States:   []string{"q0", "q1", "q2", "q3", "q4"},
			Alphabet: []string{"0", "1"},
			Transitions: map[string]map[string]string{
				"q0": {"0": "q1", "1": "q3"},
				"q1": {"0": "q4", "1": "q2"},
				"q2": {"0": "q0", "1": "q2"},
				"q3": {"0": "q2", "1": "q4"},
				"q4": {"0": "q4", "1": "q0"},
			},
			StartState:  "q0",
			FinalStates: []string{"q2"},
		}
		assert.Equal(t, want, minimized.ToCanonical())
	})

	t.Run("testLanguagePreserved", func(t *testing.T) {
		d := newExample(t)
		minimized := Minimize(d)

		for _, input := range allInputs(d.Alphabet(), 8) {
			assert.Equal(t, d.Accepts(input), minimized.Accepts(input),
				"input %v", input)
		}
	})

	t.Run("testDeterministic", func(t *testing.T) {
		first := Minimize(newExample(t))
		second := Minimize(newExample(t))
		assert.Equal(t, first.ToCanonical(), second.ToCanonical())
	})

	t.Run("testIdempotentUpToRenaming", func(t *testing.T) {
		once := Minimize(newExample(t))
		twice := Minimize(once)
		assert.Equal(t, once.NumStates(), twice.NumStates())
		assert.Equal(t, once.ToCanonical(), twice.ToCanonical())
	})

	t.Run("testAlreadyMinimal", func(t *testing.T) {
		// Even/odd number of a's: two distinguishable states.
		d, err := New(
			[]string{"even", "odd"},
			[]string{"a"},
			map[string]map[string]string{
				"even": {"a": "odd"},
				"odd":  {"a": "even"},
			},
			"even",
			[]string{"even"},
		)
		assert.Nil(t, err)

		minimized := Minimize(d)
		assert.Equal(t, 2, minimized.NumStates())
		for _, input := range allInputs(d.Alphabet(), 6) {
			assert.Equal(t, d.Accepts(input), minimized.Accepts(input))
		}
	})

	t.Run("testNoFinalStatesCollapsesToOneState", func(t *testing.T) {
		d, err := New(
			[]string{"S", "T", "U"},
			[]string{"a"},
			map[string]map[string]string{
				"S": {"a": "T"},
				"T": {"a": "U"},
				"U": {"a": "S"},
			},
			"S",
			nil,
		)
		assert.Nil(t, err)

		minimized := Minimize(d)
		assert.Equal(t, 1, minimized.NumStates())
		assert.Empty(t, minimized.FinalStates())
		assert.False(t, minimized.Accepts(nil))
		assert.False(t, minimized.Accepts([]string{"a", "a"}))
	})

	t.Run("testAllFinalStatesCollapseToOneState", func(t *testing.T) {
		d, err := New(
			[]string{"S", "T"},
			[]string{"a"},
			map[string]map[string]string{
				"S": {"a": "T"},
				"T": {"a": "S"},
			},
			"S",
			[]string{"S", "T"},
		)
		assert.Nil(t, err)

		minimized := Minimize(d)
		assert.Equal(t, 1, minimized.NumStates())
		assert.Equal(t, []string{"q0"}, minimized.FinalStates())
	})

	t.Run("testSingleState", func(t *testing.T) {
		d, err := New(
			[]string{"S"},
			[]string{"a"},
			map[string]map[string]string{"S": {"a": "S"}},
			"S",
			[]string{"S"},
		)
		assert.Nil(t, err)

		minimized := Minimize(d)
		assert.Equal(t, 1, minimized.NumStates())
		assert.True(t, minimized.Accepts([]string{"a", "a", "a"}))
	})

	t.Run("testUnreachableStatesNeverSurface", func(t *testing.T) {
		// The unreachable final state Z must not influence the result.
		d, err := New(
			[]string{"S", "Z"},
			[]string{"a"},
			map[string]map[string]string{
				"S": {"a": "S"},
				"Z": {"a": "Z"},
			},
			"S",
			[]string{"Z"},
		)
		assert.Nil(t, err)

		minimized := Minimize(d)
		assert.Equal(t, 1, minimized.NumStates())
		assert.Empty(t, minimized.FinalStates())
	})
}

func TestPairTable(t *testing.T) {
	t.Run("testIndexIsBijective", func(t *testing.T) {
		const n = 7
		table := newPairTable(n)
		seen := map[uint]bool{}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				idx := table.index(i, j)
				assert.Less(t, idx, uint(n*(n-1)/2))
				assert.False(t, seen[idx], "pair (%d,%d) collides", i, j)
				seen[idx] = true
			}
		}
	})

	t.Run("testMark", func(t *testing.T) {
		table := newPairTable(4)
		assert.False(t, table.marked(1, 3))
		table.mark(1, 3)
		assert.True(t, table.marked(1, 3))
		assert.False(t, table.marked(0, 1))
		assert.False(t, table.marked(2, 3))
	})
}
