package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var corpus = []string{
	"", "0", "1", "1.0", "1.0.0", "1.0.1", "1.1", "1.9", "1.10", "1.10.0.1",
	"2.0-alpha", "2.0-alpha.1", "2.0-alpha.beta", "2.0-beta", "2.0-beta.2",
	"2.0-beta.11", "2.0-rc.1", "2.0", "2.0+build.5", "v2.1", "2.1a", "3.x",
	"garbage", "10.0.19041", "007.1", "99999999999999999999999.1",
}

func TestCompareOrdering(t *testing.T) {
	tests := []struct {
		lesser, greater string
	}{
		{"1.0", "1.0.1"},
		{"1.0.1", "1.10"},
		{"1.9", "1.10"},
		{"1.0", "1.10"},
		{"2.0-beta", "2.0"},
		{"2.0-alpha", "2.0-beta"},
		{"2.0-alpha", "2.0-alpha.1"},
		{"2.0-alpha.1", "2.0-alpha.beta"},
		{"2.0-beta.2", "2.0-beta.11"},
		{"1.10", "2.0-beta"},
		{"2.1", "2.1a"},
		{"9.0", "99999999999999999999999.1"},
		{"", "0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.lesser+"<"+tt.greater, func(t *testing.T) {
			a, b := Parse(tt.lesser), Parse(tt.greater)
			assert.Equal(t, -1, Compare(a, b))
			assert.Equal(t, 1, Compare(b, a))
			assert.True(t, a.Less(b))
		})
	}
}

func TestCompareEquivalentForms(t *testing.T) {
	tests := [][2]string{
		{"1.0", "1.0.0"},
		{"1", "1.0.0.0"},
		{"v2.1", "2.1"},
		{"2.0+build.5", "2.0"},
		{"007.1", "7.1"},
		{" 1.2 ", "1.2"},
		{"", "0"},
	}

	for _, tt := range tests {
		assert.True(t, Parse(tt[0]).Equal(Parse(tt[1])), "%q == %q", tt[0], tt[1])
	}
}

func TestCompareReflexive(t *testing.T) {
	for _, v := range corpus {
		assert.Equal(t, 0, Compare(Parse(v), Parse(v)), v)
	}
}

func TestCompareAntisymmetricAndTransitive(t *testing.T) {
	keys := make([]Key, len(corpus))
	for i, v := range corpus {
		keys[i] = Parse(v)
	}

	for _, a := range keys {
		for _, b := range keys {
			assert.Equal(t, -Compare(b, a), Compare(a, b), "%q vs %q", a, b)

			for _, c := range keys {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(t, Compare(a, c), 0, "%q <= %q <= %q", a, b, c)
				}
			}
		}
	}
}

func TestParseNeverPanicsOnMalformedInput(t *testing.T) {
	inputs := []string{"-", "+", "..", "-.-", "v", "1..2", "1.-", "☃", "1.0-", "\x00"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { _ = Parse(in).Compare(Parse("1.0")) }, in)
	}
}

func TestKeyAccessors(t *testing.T) {
	k := Parse("2.0-beta")
	assert.Equal(t, "2.0-beta", k.String())
	assert.True(t, k.IsPrerelease())
	assert.False(t, Parse("2.0").IsPrerelease())
}
