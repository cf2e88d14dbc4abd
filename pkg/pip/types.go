// pkg/pip/types.go
package pip

import (
	"log"
	"time"
)

// Config configures the pip manager
type Config struct {
	Python  string        // Interpreter to run pip under (auto-detected if empty)
	Timeout time.Duration // Per-invocation timeout
	Debug   bool          // Enable debug logging
	Logger  *log.Logger   // Custom logger (optional)
}

// Manager runs pip subcommands and turns their output into typed metadata
type Manager struct {
	exec   Executor
	config *Config
	logger *log.Logger
	python string
}

// ListEntry mirrors one element of `pip list --format=json` output
type ListEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ShowInfo holds the fields read from one `pip show` stanza
type ShowInfo struct {
	Name       string
	Version    string
	Requires   []string
	RequiredBy []string
}
