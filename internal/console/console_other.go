//go:build !windows

// Package console installs a Ctrl+C handler on Windows. Elsewhere os/signal
// is enough and the functions here do nothing.
package console

// SetupConsoleHandler returns a no-op re-register function.
func SetupConsoleHandler(shutdownChan chan struct{}) func() {
	return func() {}
}
