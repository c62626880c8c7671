package supervisor

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/connect-tool/coresdk-go/internal/config"
	"github.com/connect-tool/coresdk-go/internal/platform"
)

// Status is the structured outcome of a supervisor operation.
type Status struct {
	// Success reports whether the operation achieved its goal.
	Success bool `json:"success"`

	// IsRunning reports whether a core process is alive after the
	// operation.
	IsRunning bool `json:"is_running"`

	// PID is the process id of the running core, nil when none.
	PID *int `json:"pid,omitempty"`

	// Message is a human-readable account of what happened.
	Message string `json:"message"`
}

// trackedProcess is the single core instance a supervisor watches.
type trackedProcess struct {
	cmd *exec.Cmd
	pid int

	// done is closed by the reaper once Wait returns. waitErr is valid
	// only after done is closed.
	done    chan struct{}
	waitErr error
}

// exited reports whether the process has been reaped, without blocking.
func (p *trackedProcess) exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Supervisor owns at most one core process at a time. All methods are
// safe for concurrent use. See the package documentation for the slot
// and locking model.
type Supervisor struct {
	log     *slog.Logger
	ops     platform.Ops
	locator Locator

	grace       time.Duration
	stopTimeout time.Duration

	// mu guards proc and is held only for slot bookkeeping. The start
	// grace period and the wait for a killed core to be reaped happen
	// outside it.
	mu   sync.Mutex
	proc *trackedProcess
}

// New creates a supervisor. Zero option fields select the defaults in
// the config package; Ops defaults to the native platform.
func New(log *slog.Logger, options *config.Options) *Supervisor {
	ops := options.Ops
	if ops == nil {
		ops = platform.Native()
	}

	grace := config.DefaultStartGracePeriod
	if options.StartGracePeriod != nil {
		grace = *options.StartGracePeriod
	}

	stopTimeout := options.StopTimeout
	if stopTimeout == 0 {
		stopTimeout = config.DefaultStopTimeout
	}

	log = log.With("component", "supervisor")

	return &Supervisor{
		log:         log,
		ops:         ops,
		locator:     NewLocator(log, ops, options.CorePath),
		grace:       grace,
		stopTimeout: stopTimeout,
	}
}

// Start launches the core unless one is already running.
//
// Start is idempotent: when the tracked core is still alive it reports
// success with the existing pid instead of spawning a second instance.
// A tracked core that exited on its own is cleared and replaced.
//
// Failures are reported in the returned Status rather than as an error,
// so a missing or unspawnable core degrades the frontend instead of
// crashing it.
func (s *Supervisor) Start(ctx context.Context) Status {
	s.mu.Lock()

	if p := s.proc; p != nil {
		if !p.exited() {
			s.mu.Unlock()

			s.log.Debug("Core already running", "pid", p.pid)

			return Status{
				Success:   true,
				IsRunning: true,
				PID:       &p.pid,
				Message:   fmt.Sprintf("core already running (pid %d)", p.pid),
			}
		}

		s.log.Info("Tracked core exited on its own, respawning", "pid", p.pid)
		s.proc = nil
	}

	path, err := s.locator.Locate()
	if err != nil {
		s.mu.Unlock()

		s.log.Error("Cannot start core", "error", err)

		return Status{Message: err.Error()}
	}

	// The command deliberately outlives ctx: ctx bounds this call, not
	// the core's lifetime.
	cmd := exec.Command(path)
	cmd.Dir = filepath.Dir(path)
	s.ops.ConfigureCommand(cmd)

	if err := cmd.Start(); err != nil {
		s.mu.Unlock()

		s.log.Error("Core spawn failed", "core_path", path, "error", err)

		return Status{Message: fmt.Sprintf("failed to start core at %s: %v", path, err)}
	}

	proc := &trackedProcess{
		cmd:  cmd,
		pid:  cmd.Process.Pid,
		done: make(chan struct{}),
	}
	s.proc = proc

	go s.reap(proc)

	s.mu.Unlock()

	s.log.Info("Core started", "pid", proc.pid, "core_path", path)

	// Give the core a head start on binding its endpoint before the
	// first call races in.
	s.waitGrace(ctx)

	return Status{
		Success:   true,
		IsRunning: true,
		PID:       &proc.pid,
		Message:   fmt.Sprintf("core started (pid %d)", proc.pid),
	}
}

// reap waits on the process so the OS releases it as soon as it dies,
// then publishes the exit through done. Exactly one reaper runs per
// spawned process; everything else probes the done channel instead of
// calling Wait.
func (s *Supervisor) reap(p *trackedProcess) {
	p.waitErr = p.cmd.Wait()
	close(p.done)

	s.log.Debug("Core process reaped", "pid", p.pid, "wait_error", p.waitErr)
}

// waitGrace sleeps for the start grace period, cut short when ctx ends.
func (s *Supervisor) waitGrace(ctx context.Context) {
	if s.grace <= 0 {
		return
	}

	t := time.NewTimer(s.grace)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// Status reports the supervisor's view of the core without blocking.
//
// The probe is pessimistic: a tracked process whose exit has been
// observed, however it ended, is reported as not running and the slot is
// cleared so the next Start respawns.
func (s *Supervisor) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.proc
	if p == nil {
		return Status{Success: true, Message: "core not running"}
	}

	if p.exited() {
		s.proc = nil

		msg := exitMessage(p)
		s.log.Info("Core exit detected", "pid", p.pid, "message", msg)

		return Status{Success: true, Message: msg}
	}

	return Status{
		Success:   true,
		IsRunning: true,
		PID:       &p.pid,
		Message:   fmt.Sprintf("core running (pid %d)", p.pid),
	}
}

// exitMessage describes how a reaped process ended.
func exitMessage(p *trackedProcess) string {
	switch {
	case p.waitErr == nil:
		return "core exited cleanly"
	case isExitError(p.waitErr):
		return fmt.Sprintf("core exited: %v", p.waitErr)
	default:
		// Wait itself failed, so the true state is unknowable; report
		// stopped rather than guess.
		return fmt.Sprintf("core state unknown, treating as stopped: %v", p.waitErr)
	}
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError

	return stderrors.As(err, &exitErr)
}

// Stop kills the tracked core and waits for it to be reaped.
//
// Stop is idempotent: with nothing tracked it succeeds immediately. The
// kill is delivered under the lock; the wait for the exit happens
// outside it, bounded by ctx and the configured stop timeout, whichever
// ends first. Once the kill is delivered the slot is already cleared, so
// a concurrent Status reports not-running while the reap completes.
func (s *Supervisor) Stop(ctx context.Context) Status {
	s.mu.Lock()

	p := s.proc
	if p == nil {
		s.mu.Unlock()

		s.log.Debug("Stop requested with no core tracked")

		return Status{Success: true, Message: "core not running"}
	}

	if p.exited() {
		s.proc = nil
		s.mu.Unlock()

		s.log.Debug("Core already exited before stop", "pid", p.pid)

		return Status{Success: true, Message: "core already exited"}
	}

	if err := killProcess(p.cmd.Process); err != nil {
		// The process may still be alive, so it stays in the slot for a
		// retry or the shutdown hook to have another go at it.
		s.mu.Unlock()

		s.log.Error("Core kill failed", "pid", p.pid, "error", err)

		return Status{
			IsRunning: true,
			PID:       &p.pid,
			Message:   fmt.Sprintf("failed to kill core (pid %d): %v", p.pid, err),
		}
	}

	s.proc = nil
	s.mu.Unlock()

	s.log.Info("Core kill delivered, awaiting exit", "pid", p.pid)

	ctx, cancel := context.WithTimeout(ctx, s.stopTimeout)
	defer cancel()

	select {
	case <-p.done:
		s.log.Info("Core stopped", "pid", p.pid)

		return Status{Success: true, Message: fmt.Sprintf("core stopped (pid %d)", p.pid)}

	case <-ctx.Done():
		s.log.Warn("Timed out waiting for core exit", "pid", p.pid)

		return Status{Message: fmt.Sprintf("kill delivered to core (pid %d) but it was not reaped in time", p.pid)}
	}
}

// killProcess delivers a hard kill, treating an already-finished process
// as success.
func killProcess(p *os.Process) error {
	if err := p.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
		return err
	}

	return nil
}

// Shutdown is the application-exit hook: a best-effort Stop whose
// outcome is logged instead of returned. Safe to call multiple times
// and with no core tracked.
func (s *Supervisor) Shutdown(ctx context.Context) {
	st := s.Stop(ctx)
	if !st.Success {
		s.log.Warn("Core shutdown incomplete", "message", st.Message)

		return
	}

	s.log.Debug("Core shutdown complete", "message", st.Message)
}
