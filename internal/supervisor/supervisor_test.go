//go:build !windows

package supervisor

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/connect-tool/coresdk-go/internal/config"
)

// writeScript drops an executable shell script into a temp dir, standing
// in for the core binary.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "connect-tool-core")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))

	return path
}

func newTestSupervisor(t *testing.T, corePath string) *Supervisor {
	t.Helper()

	noGrace := time.Duration(0)

	return New(slog.Default(), &config.Options{
		CorePath:         corePath,
		StartGracePeriod: &noGrace,
	})
}

// waitUntil polls cond until it returns true or the deadline passes.
func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}

		time.Sleep(5 * time.Millisecond)
	}

	t.Fatal("condition not met before deadline")
}

func TestStartStopLifecycle(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nexec sleep 30\n")
	s := newTestSupervisor(t, script)
	defer s.Shutdown(context.Background())

	ctx := context.Background()

	started := s.Start(ctx)
	require.True(t, started.Success)
	require.True(t, started.IsRunning)
	require.NotNil(t, started.PID)
	require.Contains(t, started.Message, "core started")

	running := s.Status()
	require.True(t, running.Success)
	require.True(t, running.IsRunning)
	require.NotNil(t, running.PID)
	require.Equal(t, *started.PID, *running.PID)

	stopped := s.Stop(ctx)
	require.True(t, stopped.Success)
	require.False(t, stopped.IsRunning)
	require.Contains(t, stopped.Message, "core stopped")

	after := s.Status()
	require.True(t, after.Success)
	require.False(t, after.IsRunning)
	require.Nil(t, after.PID)
}

func TestStart_IdempotentWhileRunning(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nexec sleep 30\n")
	s := newTestSupervisor(t, script)
	defer s.Shutdown(context.Background())

	ctx := context.Background()

	first := s.Start(ctx)
	require.True(t, first.Success)
	require.NotNil(t, first.PID)

	second := s.Start(ctx)
	require.True(t, second.Success)
	require.True(t, second.IsRunning)
	require.NotNil(t, second.PID)
	require.Equal(t, *first.PID, *second.PID)
	require.Contains(t, second.Message, "already running")
}

func TestStart_MissingExecutable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "connect-tool-core")
	s := newTestSupervisor(t, missing)

	st := s.Start(context.Background())
	require.False(t, st.Success)
	require.False(t, st.IsRunning)
	require.Nil(t, st.PID)
	require.Contains(t, st.Message, "core executable not found")
	require.Contains(t, st.Message, missing)
}

func TestStart_RespawnsAfterExternalExit(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nexit 0\n")
	s := newTestSupervisor(t, script)
	defer s.Shutdown(context.Background())

	ctx := context.Background()

	first := s.Start(ctx)
	require.True(t, first.Success)
	require.NotNil(t, first.PID)

	waitUntil(t, 5*time.Second, func() bool {
		return !s.Status().IsRunning
	})

	second := s.Start(ctx)
	require.True(t, second.Success)
	require.True(t, second.IsRunning)
	require.NotNil(t, second.PID)
	require.NotEqual(t, *first.PID, *second.PID)
}

func TestStatus_NothingTracked(t *testing.T) {
	s := newTestSupervisor(t, filepath.Join(t.TempDir(), "connect-tool-core"))

	st := s.Status()
	require.True(t, st.Success)
	require.False(t, st.IsRunning)
	require.Nil(t, st.PID)
	require.Equal(t, "core not running", st.Message)
}

func TestStatus_DetectsExternalExit(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nexit 0\n")
	s := newTestSupervisor(t, script)

	st := s.Start(context.Background())
	require.True(t, st.Success)

	waitUntil(t, 5*time.Second, func() bool {
		return !s.Status().IsRunning
	})

	// The exit cleared the slot; further probes report a plain not-running.
	after := s.Status()
	require.True(t, after.Success)
	require.False(t, after.IsRunning)
	require.Equal(t, "core not running", after.Message)
}

func TestStop_Idempotent(t *testing.T) {
	s := newTestSupervisor(t, filepath.Join(t.TempDir(), "connect-tool-core"))

	ctx := context.Background()

	first := s.Stop(ctx)
	require.True(t, first.Success)
	require.False(t, first.IsRunning)
	require.Equal(t, "core not running", first.Message)

	second := s.Stop(ctx)
	require.True(t, second.Success)
	require.Equal(t, "core not running", second.Message)
}

func TestStop_AfterExternalExit(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nexit 0\n")
	s := newTestSupervisor(t, script)

	st := s.Start(context.Background())
	require.True(t, st.Success)

	waitUntil(t, 5*time.Second, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()

		return s.proc != nil && s.proc.exited()
	})

	stopped := s.Stop(context.Background())
	require.True(t, stopped.Success)
	require.Equal(t, "core already exited", stopped.Message)
}

func TestStop_TimeoutWithoutReap(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nexec sleep 30\n")

	cmd := exec.Command(script)
	require.NoError(t, cmd.Start())

	noGrace := time.Duration(0)
	s := New(slog.Default(), &config.Options{
		StartGracePeriod: &noGrace,
		StopTimeout:      50 * time.Millisecond,
	})

	// Plant a process with no reaper: done never closes, so the wait
	// after the kill must give up on its own.
	s.proc = &trackedProcess{
		cmd:  cmd,
		pid:  cmd.Process.Pid,
		done: make(chan struct{}),
	}

	st := s.Stop(context.Background())
	require.False(t, st.Success)
	require.False(t, st.IsRunning)
	require.Contains(t, st.Message, "not reaped in time")

	_ = cmd.Wait()
}

func TestShutdown_BestEffort(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nexec sleep 30\n")
	s := newTestSupervisor(t, script)

	ctx := context.Background()

	st := s.Start(ctx)
	require.True(t, st.Success)

	s.Shutdown(ctx)
	require.False(t, s.Status().IsRunning)

	// A second shutdown has nothing to do and must not mind.
	s.Shutdown(ctx)
}

func TestConcurrentOperations(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nexec sleep 30\n")
	s := newTestSupervisor(t, script)
	defer s.Shutdown(context.Background())

	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				s.Start(ctx)
				s.Status()
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				s.Status()
				s.Stop(ctx)
			}
		}()
	}

	wg.Wait()

	final := s.Stop(ctx)
	require.True(t, final.Success)
	require.False(t, s.Status().IsRunning)
}
