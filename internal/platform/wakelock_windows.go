//go:build windows

package platform

// SetThreadExecutionState is per OS thread, which goroutines cannot pin for
// the lifetime of a session without a dedicated locked thread.
func newWakeLock(string) WakeLock {
	return unsupportedWakeLock{}
}
