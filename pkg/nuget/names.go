// pkg/nuget/names.go
package nuget

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Suffixes Chocolatey uses to split one product into several packages
var variantSuffixes = []string{".install", ".portable"}

// FormatAsName turns a package id into a display name, e.g.
// "powershell-core" becomes "Powershell Core". Only the first letter of
// each word is changed, so "7zip" and "PSReadLine" keep their casing.
func FormatAsName(id string) string {
	name := id
	for _, suffix := range variantSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, ":"); idx >= 0 {
		name = name[:idx]
	}

	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = strings.Join(strings.Fields(name), " ")

	// Casers keep state, one per call
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.Grow(len(name))
	wordStart := true
	for _, r := range name {
		if wordStart {
			b.WriteString(upper.String(string(r)))
		} else {
			b.WriteRune(r)
		}
		wordStart = r == ' '
	}
	return b.String()
}
