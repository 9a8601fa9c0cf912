package dfa

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// Canonical Is the structured interchange form of a DFA, the contract honored
// for load/save round-trips by external collaborators. States and final
// states are kept sorted so the encoded form is deterministic; field order
// follows the formal five-tuple.
type Canonical struct {
	States      []string                     `json:"states" yaml:"states"`
	Alphabet    []string                     `json:"alphabet" yaml:"alphabet"`
	Transitions map[string]map[string]string `json:"transitions" yaml:"transitions"`
	StartState  string                       `json:"start_state" yaml:"start_state"`
	FinalStates []string                     `json:"final_states" yaml:"final_states"`
}

// ToCanonical Serializes the automaton into its canonical form. The returned
// value shares nothing with the receiver.
func (d *DFA) ToCanonical() *Canonical {
	return &Canonical{
		States:      d.States(),
		Alphabet:    d.Alphabet(),
		Transitions: copyTransitions(d.transitions),
		StartState:  d.start,
		FinalStates: d.FinalStates(),
	}
}

// FromCanonical Builds a validated DFA from a canonical form. Input ordering
// is irrelevant: FromCanonical(ToCanonical(d)) is structurally equal to d as
// sets and mappings.
func FromCanonical(c *Canonical) (*DFA, error) {
	return New(c.States, c.Alphabet, c.Transitions, c.StartState, c.FinalStates)
}

// EncodeJSON Writes the canonical form as indented JSON.
func (c *Canonical) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(c)
}

// DecodeJSON Reads a canonical form from JSON. The result is not validated;
// pass it to FromCanonical.
func DecodeJSON(r io.Reader) (*Canonical, error) {
	c := &Canonical{}
	if err := json.NewDecoder(r).Decode(c); err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeYAML Writes the canonical form as YAML.
func (c *Canonical) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(c)
}

// DecodeYAML Reads a canonical form from YAML. The result is not validated;
// pass it to FromCanonical.
func DecodeYAML(r io.Reader) (*Canonical, error) {
	c := &Canonical{}
	if err := yaml.NewDecoder(r).Decode(c); err != nil {
		return nil, err
	}
	return c, nil
}
