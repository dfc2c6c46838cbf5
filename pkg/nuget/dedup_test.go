package nuget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(id string, versions ...string) []Candidate {
	out := make([]Candidate, 0, len(versions))
	for _, v := range versions {
		out = append(out, NewCandidate(id, v))
	}
	return out
}

func reversed(in []Candidate) []Candidate {
	out := make([]Candidate, len(in))
	for i, c := range in {
		out[len(in)-1-i] = c
	}
	return out
}

func TestDeduplicateHighestVersionWins(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		want     string
	}{
		{"ascending", []string{"1.0", "1.5", "2.0"}, "2.0"},
		{"descending", []string{"2.0", "1.5", "1.0"}, "2.0"},
		{"numeric not lexical", []string{"1.9", "1.10", "1.2"}, "1.10"},
		{"release beats prerelease", []string{"2.0-beta", "2.0", "1.0"}, "2.0"},
		{"single", []string{"0.1"}, "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := candidates("Foo", tt.versions...)

			got := Deduplicate(in)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Version)

			back := Deduplicate(reversed(in))
			require.Len(t, back, 1)
			assert.True(t, got[0].Key.Equal(back[0].Key))
		})
	}
}

func TestDeduplicateFirstSeenWinsOnTie(t *testing.T) {
	got := Deduplicate(candidates("Foo", "1.0", "1.0.0", "1"))

	require.Len(t, got, 1)
	assert.Equal(t, "1.0", got[0].Version)
}

func TestDeduplicateKeepsFirstSeenIDOrder(t *testing.T) {
	in := []Candidate{
		NewCandidate("b", "1.0"),
		NewCandidate("a", "1.0"),
		NewCandidate("b", "2.0"),
		NewCandidate("c", "0.1"),
		NewCandidate("a", "0.5"),
	}

	got := Deduplicate(in)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, []string{"2.0", "1.0", "0.1"}, []string{got[0].Version, got[1].Version, got[2].Version})
}

func TestCandidateSet(t *testing.T) {
	set := NewCandidateSet()

	assert.True(t, set.Add(NewCandidate("x", "1.0")))
	assert.False(t, set.Add(NewCandidate("x", "0.9")))
	assert.False(t, set.Add(NewCandidate("x", "1.0.0")))
	assert.True(t, set.Add(NewCandidate("x", "1.1")))

	c, ok := set.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1.1", c.Version)
	assert.Equal(t, 1, set.Len())

	_, ok = set.Get("y")
	assert.False(t, ok)
}

func TestDeduplicateEmpty(t *testing.T) {
	assert.Empty(t, Deduplicate(nil))
}
