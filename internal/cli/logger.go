// internal/cli/logger.go
package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/arc-language/nupkg/pkg/nuget"
)

// cliTask prints errors as warnings and progress only in debug mode
type cliTask struct {
	mu      sync.Mutex
	out     io.Writer
	debug   bool
	manager string
	task    nuget.TaskType
}

func newCLITask(out io.Writer, debug bool, manager string, task nuget.TaskType) *cliTask {
	return &cliTask{out: out, debug: debug, manager: manager, task: task}
}

func (t *cliTask) Log(msg string) {
	if !t.debug {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "[%s/%s] %s\n", t.manager, t.task, msg)
}

func (t *cliTask) Error(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "⚠️  %s\n", msg)
}

func (t *cliTask) Close(code int) {
	if !t.debug {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "[%s/%s] finished with code %d\n", t.manager, t.task, code)
}
