// Package labels links status flags to issue labels and validates label combinations.
package labels

import (
	"fmt"
	"strings"
)

// Flag is a named boolean status derived from the presence of a single issue label
type Flag struct {
	Name      string
	Label     string
	Char      rune
	Conflicts []string // names of other flags this one cannot coexist with
}

// Taxonomy is an ordered table of status flags for one kind of report
type Taxonomy struct {
	name      string
	flags     []Flag
	byChar    map[rune]int
	byLabel   map[string]int
	conflicts [][]bool
}

// NewTaxonomy builds a taxonomy from flag declarations.
// Conflict declarations are mirrored so that the relation is symmetric.
func NewTaxonomy(name string, flags ...Flag) (*Taxonomy, error) {
	t := &Taxonomy{
		name:    name,
		flags:   flags,
		byChar:  make(map[rune]int, len(flags)),
		byLabel: make(map[string]int, len(flags)),
	}

	byName := make(map[string]int, len(flags))
	for i, flag := range flags {
		if _, exists := byName[flag.Name]; exists {
			return nil, fmt.Errorf("%s: duplicate flag name %q", name, flag.Name)
		}
		if _, exists := t.byChar[flag.Char]; exists {
			return nil, fmt.Errorf("%s: duplicate flag char %q", name, flag.Char)
		}
		if _, exists := t.byLabel[flag.Label]; exists {
			return nil, fmt.Errorf("%s: duplicate flag label %q", name, flag.Label)
		}
		byName[flag.Name] = i
		t.byChar[flag.Char] = i
		t.byLabel[flag.Label] = i
	}

	t.conflicts = make([][]bool, len(flags))
	for i := range t.conflicts {
		t.conflicts[i] = make([]bool, len(flags))
	}

	for i, flag := range flags {
		for _, other := range flag.Conflicts {
			j, ok := byName[other]
			if !ok {
				return nil, fmt.Errorf("%s: flag %q conflicts with unknown flag %q", name, flag.Name, other)
			}
			if i == j {
				return nil, fmt.Errorf("%s: flag %q conflicts with itself", name, flag.Name)
			}
			t.conflicts[i][j] = true
			t.conflicts[j][i] = true
		}
	}

	return t, nil
}

// MustTaxonomy is like NewTaxonomy but panics on invalid declarations
func MustTaxonomy(name string, flags ...Flag) *Taxonomy {
	t, err := NewTaxonomy(name, flags...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the report kind this taxonomy belongs to
func (t *Taxonomy) Name() string {
	return t.name
}

// Flags returns the flags in declaration order
func (t *Taxonomy) Flags() []Flag {
	return append([]Flag(nil), t.flags...)
}

// LabelFor returns the canonical label for a single-character flag
func (t *Taxonomy) LabelFor(flag rune) (string, bool) {
	i, ok := t.byChar[flag]
	if !ok {
		return "", false
	}
	return t.flags[i].Label, true
}

// Describe enumerates each flag, its label and what it conflicts with
func (t *Taxonomy) Describe() string {
	lines := make([]string, 0, len(t.flags))

	for i, flag := range t.flags {
		var line strings.Builder
		fmt.Fprintf(&line, "%c: %s", flag.Char, flag.Label)

		var conflicting []string
		for j, other := range t.flags {
			if t.conflicts[i][j] {
				conflicting = append(conflicting, other.Label)
			}
		}
		if len(conflicting) > 0 {
			fmt.Fprintf(&line, " (conflicts with: %s)", strings.Join(conflicting, " "))
		}

		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// ParseFlags expands a string of flag characters (e.g. "TAP") into canonical labels
func (t *Taxonomy) ParseFlags(flags string) ([]string, error) {
	var result []string
	for _, r := range flags {
		label, ok := t.LabelFor(r)
		if !ok {
			return nil, &UnknownFlagError{Flag: r, Valid: t.Describe()}
		}
		result = append(result, label)
	}
	return result, nil
}

// NewStatus returns an empty status bound to this taxonomy
func (t *Taxonomy) NewStatus() *Status {
	return &Status{taxonomy: t, set: make([]bool, len(t.flags))}
}

// UnknownFlagError is returned when a flag character is not part of a taxonomy
type UnknownFlagError struct {
	Flag  rune
	Valid string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag %q. Valid flags:\n%s", e.Flag, e.Valid)
}
