// pkg/nuget/logger.go
package nuget

import (
	"io"
	"log"
	"os"
)

// TaskLogger records the progress of one operation
type TaskLogger interface {
	Log(msg string)
	Error(msg string)
	Close(code int)
}

// newLogger returns cfg.Logger, or a logger that prints only in debug mode
func newLogger(cfg *Config) *log.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	if cfg.Debug {
		return log.New(os.Stdout, "[NUGET] ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// logTask is the default TaskLogger, writing through a *log.Logger
type logTask struct {
	logger  *log.Logger
	manager string
	task    TaskType
}

// NewTaskLogger creates a TaskLogger that prefixes every line with the
// manager name and task type
func NewTaskLogger(logger *log.Logger, manager string, task TaskType) TaskLogger {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &logTask{logger: logger, manager: manager, task: task}
}

func (t *logTask) Log(msg string) {
	t.logger.Printf("%s/%s: %s", t.manager, t.task, msg)
}

func (t *logTask) Error(msg string) {
	t.logger.Printf("%s/%s: ERROR: %s", t.manager, t.task, msg)
}

func (t *logTask) Close(code int) {
	t.logger.Printf("%s/%s: finished with code %d", t.manager, t.task, code)
}
