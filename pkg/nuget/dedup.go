// pkg/nuget/dedup.go
package nuget

// CandidateSet keeps the highest version candidate per package id for a
// single source response. The zero value is not usable, see NewCandidateSet.
type CandidateSet struct {
	order []string
	byID  map[string]Candidate
}

// NewCandidateSet creates an empty set
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{byID: make(map[string]Candidate)}
}

// Add stores c unless a candidate with the same id and an equal or higher
// version is already stored. It reports whether c was stored.
func (s *CandidateSet) Add(c Candidate) bool {
	stored, ok := s.byID[c.ID]
	if !ok {
		s.order = append(s.order, c.ID)
		s.byID[c.ID] = c
		return true
	}
	if c.Key.Compare(stored.Key) <= 0 {
		return false
	}
	s.byID[c.ID] = c
	return true
}

// Get returns the surviving candidate for id
func (s *CandidateSet) Get(id string) (Candidate, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Len returns the number of distinct ids
func (s *CandidateSet) Len() int {
	return len(s.order)
}

// Candidates returns the survivors in the order their ids were first seen
func (s *CandidateSet) Candidates() []Candidate {
	out := make([]Candidate, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Deduplicate folds candidates down to one per id: the highest version
// wins, the first seen wins on a tie.
func Deduplicate(candidates []Candidate) []Candidate {
	set := NewCandidateSet()
	for _, c := range candidates {
		set.Add(c)
	}
	return set.Candidates()
}
