package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	cleanupMu  sync.Mutex
	cleanupFns []func()
)

// RegisterCrashCleanup adds a function to run before the crash report is
// printed. Used to restore the terminal so the stack trace is readable.
func RegisterCrashCleanup(fn func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupFns = append(cleanupFns, fn)
}

// HandleCrash is the unified panic handler. It runs registered cleanups
// (terminal restore), prints the panic value and stack trace, and exits.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	cleanupMu.Lock()
	fns := cleanupFns
	cleanupMu.Unlock()
	for _, fn := range fns {
		fn()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so a crashed goroutine still restores
// the terminal before printing its stack.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
