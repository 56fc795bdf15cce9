//go:build windows

// Package console installs a Ctrl+C handler that keeps working after SDL
// locks the OS thread and replaces the process console handlers during init.
package console

import (
	"log"
	"sync/atomic"

	"golang.org/x/sys/windows"
)

const (
	ctrlCEvent     = 0
	ctrlBreakEvent = 1
)

var procSetConsoleCtrlHandler = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetConsoleCtrlHandler")

type handlerState struct {
	shutdownChan chan struct{}
	closed       atomic.Bool
	callback     uintptr
}

// Kept reachable for as long as Windows may call back into it.
var state *handlerState

// SetupConsoleHandler closes shutdownChan on Ctrl+C or Ctrl+Break.
// The returned function re-registers the handler; call it after SDL init.
func SetupConsoleHandler(shutdownChan chan struct{}) func() {
	state = &handlerState{shutdownChan: shutdownChan}
	state.callback = windows.NewCallback(func(ctrlType uint32) uintptr {
		if ctrlType != ctrlCEvent && ctrlType != ctrlBreakEvent {
			return 0
		}
		if state.closed.CompareAndSwap(false, true) {
			close(state.shutdownChan)
		}
		return 1
	})

	register := func() {
		if ret, _, err := procSetConsoleCtrlHandler.Call(state.callback, 1); ret == 0 {
			log.Printf("Warning: failed to set console control handler: %v", err)
		}
	}
	register()
	return register
}
