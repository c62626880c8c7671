package coresdk

import (
	"github.com/connect-tool/coresdk-go/internal/supervisor"
)

// Supervisor manages the lifetime of the core process.
//
// A supervisor tracks at most one core at a time. Start is idempotent while
// the tracked core is alive, and a core that exited on its own is detected
// and replaced on the next Start. Stop kills the tracked core and waits,
// bounded by WithStopTimeout, for it to be reaped.
//
// Start, Stop, and Status report outcomes as Status values rather than
// errors, so a missing or crashed core degrades the frontend instead of
// crashing it.
//
// Example usage:
//
//	sup := NewSupervisor(
//	    WithLogger(slog.Default()),
//	)
//	defer sup.Shutdown(context.Background())
//
//	if st := sup.Start(ctx); !st.Success {
//	    log.Fatal(st.Message)
//	}
//
//	st := sup.Status()
//	if st.IsRunning {
//	    fmt.Println("core pid:", *st.PID)
//	}
type Supervisor = supervisor.Supervisor

// NewSupervisor creates a supervisor for the core executable.
//
// By default the executable is expected next to the frontend binary, named
// connect-tool-core (connect-tool-core.exe on Windows). Use WithCorePath
// to point somewhere else.
func NewSupervisor(opts ...Option) *Supervisor {
	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	return supervisor.New(log, options)
}
