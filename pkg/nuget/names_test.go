package nuget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAsName(t *testing.T) {
	tests := map[string]string{
		"git":             "Git",
		"git.install":     "Git",
		"nodejs.portable": "Nodejs",
		"powershell-core": "Powershell Core",
		"dotnet_sdk":      "Dotnet Sdk",
		"PSReadLine":      "PSReadLine",
		"vcredist:x64":    "Vcredist",
		"choco/git":       "Git",
		"a--b":            "A B",
		"":                "",

		// Leading digits leave the following letter alone
		"7zip":         "7zip",
		"7zip.install": "7zip",
		"7-zip":        "7 Zip",

		// Variant markers are removed wherever they appear
		"vscode.install.portable":     "Vscode",
		"notepadplusplus.install.x64": "Notepadplusplus.x64",
	}

	for id, want := range tests {
		assert.Equal(t, want, FormatAsName(id), id)
	}
}

func TestFormatAsNameConcurrentUse(t *testing.T) {
	done := make(chan string, 8)
	for i := 0; i < cap(done); i++ {
		go func() { done <- FormatAsName("powershell-core") }()
	}
	for i := 0; i < cap(done); i++ {
		assert.Equal(t, "Powershell Core", <-done)
	}
}
