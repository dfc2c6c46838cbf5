// pkg/nuget/constants.go
package nuget

import "time"

const (
	// DefaultUserAgent is sent with every feed request unless overridden
	DefaultUserAgent = "nupkg/0.1.0"

	// DefaultTimeout bounds a single feed request
	DefaultTimeout = 2 * time.Minute

	// DefaultConcurrency queries sources one at a time
	DefaultConcurrency = 1

	// acceptHeader mirrors what NuGet v2 servers negotiate for Atom feeds
	acceptHeader = "application/atom+xml,application/xml"

	// idSeparator joins package ids and versions in GetUpdates() requests
	idSeparator = "|"
)

// TaskType names the operation a task logger is recording
type TaskType string

const (
	TaskFindPackages TaskType = "find-packages"
	TaskListUpdates  TaskType = "list-updates"
	TaskDetails      TaskType = "package-details"
)
