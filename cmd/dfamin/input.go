package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nerode/dfa"
)

// loadCanonical reads a canonical DFA description from path. The format is
// chosen by extension: .yaml/.yml is YAML, anything else JSON.
func loadCanonical(path string) (*dfa.Canonical, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return dfa.DecodeYAML(f)
	default:
		return dfa.DecodeJSON(f)
	}
}

// loadDFA reads and validates a DFA definition from path.
func loadDFA(path string) (*dfa.DFA, error) {
	c, err := loadCanonical(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	d, err := dfa.FromCanonical(c)
	if err != nil {
		return nil, fmt.Errorf("invalid DFA in %s: %w", path, err)
	}
	return d, nil
}

func saveCanonical(path string, c *dfa.Canonical) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = c.EncodeYAML(f)
	default:
		err = c.EncodeJSON(f)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// parseFields splits a comma-separated field list, trimming whitespace and
// dropping empty entries.
func parseFields(s string) []string {
	fields := make([]string, 0)
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// parseTransitionLine parses one "STATE:SYMBOL=TARGET,SYMBOL=TARGET" line.
func parseTransitionLine(line string) (string, map[string]string, error) {
	state, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", nil, fmt.Errorf("transition line %q is missing the ':' separator", line)
	}
	state = strings.TrimSpace(state)

	row := make(map[string]string)
	for _, pair := range strings.Split(rest, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		symbol, target, ok := strings.Cut(pair, "=")
		if !ok {
			return "", nil, fmt.Errorf("transition %q for state %q is missing the '=' separator", pair, state)
		}
		row[strings.TrimSpace(symbol)] = strings.TrimSpace(target)
	}
	return state, row, nil
}

// parseTransitionTable parses a transition table with one line per state,
// lines separated by newlines or semicolons. Blank lines are skipped.
func parseTransitionTable(text string) (map[string]map[string]string, error) {
	transitions := make(map[string]map[string]string)
	for _, line := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ';'
	}) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		state, row, err := parseTransitionLine(line)
		if err != nil {
			return nil, err
		}
		for symbol, target := range row {
			if transitions[state] == nil {
				transitions[state] = make(map[string]string)
			}
			transitions[state][symbol] = target
		}
	}
	return transitions, nil
}
