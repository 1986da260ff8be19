package labels

import "strings"

// Status records which flags of a taxonomy are set on a single request
type Status struct {
	taxonomy *Taxonomy
	set      []bool
}

// Mark sets the flag whose canonical label matches. Unknown labels are ignored.
func (s *Status) Mark(label string) bool {
	i, ok := s.taxonomy.byLabel[label]
	if !ok {
		return false
	}
	s.set[i] = true
	return true
}

// IsValid reports whether no two set flags conflict with each other
func (s *Status) IsValid() bool {
	for i := range s.set {
		if !s.set[i] {
			continue
		}
		for j := i + 1; j < len(s.set); j++ {
			if s.set[j] && s.taxonomy.conflicts[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the set flags' characters, space-separated, in declaration order
func (s *Status) String() string {
	chars := make([]string, 0, len(s.set))
	for i, set := range s.set {
		if set {
			chars = append(chars, string(s.taxonomy.flags[i].Char))
		}
	}
	return strings.Join(chars, " ")
}
