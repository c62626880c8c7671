// Package supervisor manages the lifecycle of the connect-tool core
// process.
//
// A Supervisor owns at most one core process at a time, held in a single
// slot behind a mutex. The operations mirror what a frontend needs:
//
//   - Start spawns the core, or reports the existing pid when one is
//     already alive. A tracked core that exited on its own is cleared and
//     replaced.
//   - Stop kills the tracked core and waits, bounded, for it to be
//     reaped. With nothing tracked it trivially succeeds.
//   - Status probes liveness without blocking and without spawning.
//   - Shutdown is the application-exit hook: a best-effort Stop whose
//     outcome is logged instead of returned.
//
// Operational failures (core executable missing, spawn refused, kill
// failed) are reported as Status values rather than errors: the frontend
// shows Message to the user and keeps running.
//
// # Liveness
//
// Each spawned process gets a reaper goroutine that blocks in Wait and
// closes the process's done channel when it returns. Probing liveness is
// then a non-blocking channel check: no polling syscalls, no zombies,
// and no race between two waiters. The probe is pessimistic: any
// observed exit, clean or not, clears the slot so the next Start
// respawns.
//
// # Lock discipline
//
// The slot mutex is held only for bookkeeping. Everything slow, the
// post-spawn grace period and the wait for a killed core to be reaped,
// happens outside it, so Status and Start stay responsive while a Stop
// is in flight. A Stop clears the slot as soon as the kill is delivered,
// which means a concurrent Status reports not-running while the reap is
// still pending; that is the intended reading, not a bug.
package supervisor
