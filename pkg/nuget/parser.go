// pkg/nuget/parser.go
package nuget

import (
	"regexp"
	"strings"
)

// EntryShape selects how id and version are laid out inside an <entry> block
type EntryShape int

const (
	// SearchShape matches attribute style entries: Id='x' Version='y'
	SearchShape EntryShape = iota

	// UpdateShape matches element style entries: <d:Id>x</d:Id><d:Version>y</d:Version>
	UpdateShape
)

var (
	entryPattern = regexp.MustCompile(`<entry>([\s\S]*?)</entry>`)

	attrIDPattern      = regexp.MustCompile(`\bId='([^<>']+)'`)
	attrVersionPattern = regexp.MustCompile(`\bVersion='([^<>']+)'`)

	// Some servers quote element values, so an optional ' is tolerated on both sides
	elemIDPattern      = regexp.MustCompile(`<d:Id>\s*'?([^<>']+?)'?\s*</d:Id>`)
	elemVersionPattern = regexp.MustCompile(`<d:Version>\s*'?([^<>']+?)'?\s*</d:Version>`)
)

func (s EntryShape) String() string {
	switch s {
	case SearchShape:
		return "search"
	case UpdateShape:
		return "update"
	default:
		return "unknown"
	}
}

func (s EntryShape) patterns() (id, ver *regexp.Regexp) {
	if s == UpdateShape {
		return elemIDPattern, elemVersionPattern
	}
	return attrIDPattern, attrVersionPattern
}

// ParseEntries extracts one candidate per well-formed <entry> block of
// body, in document order. Blocks missing an id or a version are skipped.
func ParseEntries(body string, shape EntryShape) []Candidate {
	idPattern, verPattern := shape.patterns()

	var candidates []Candidate
	for _, match := range entryPattern.FindAllStringSubmatch(body, -1) {
		block := match[1]

		id := firstGroup(idPattern, block)
		ver := firstGroup(verPattern, block)
		if id == "" || ver == "" {
			continue
		}

		candidates = append(candidates, NewCandidate(id, ver))
	}
	return candidates
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
