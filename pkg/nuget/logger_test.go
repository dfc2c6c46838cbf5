package nuget

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskLoggerFormatsLines(t *testing.T) {
	var buf bytes.Buffer
	task := NewTaskLogger(log.New(&buf, "", 0), "choco", TaskFindPackages)

	task.Log("hello")
	task.Error("bad source")
	task.Close(0)

	assert.Equal(t,
		"choco/find-packages: hello\nchoco/find-packages: ERROR: bad source\nchoco/find-packages: finished with code 0\n",
		buf.String())
}

func TestTaskLoggerNilLoggerDiscards(t *testing.T) {
	task := NewTaskLogger(nil, "choco", TaskListUpdates)

	assert.NotPanics(t, func() {
		task.Log("x")
		task.Close(1)
	})
}

func TestManagerLogsThroughConfiguredLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{
		Properties: Properties{Name: "nuget", DefaultSource: Source{Name: "dead", URL: "http://127.0.0.1:1"}},
		Capabilities: Capabilities{
			SupportsCustomVersions:     true,
			SupportsCustomPackageIcons: true,
		},
		Logger: log.New(&buf, "", 0),
	}

	pm, err := NewPackageManager(cfg)
	assert.NoError(t, err)

	pm.FindPackages(context.Background(), "x")

	assert.Contains(t, buf.String(), "nuget/find-packages: ERROR: Search on source dead failed")
	assert.Contains(t, buf.String(), "nuget/find-packages: finished with code 0")
}
