package program

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"
)

// Routine that is executed by RunMain(). The context is canceled when
// the program receives a termination signal.
type Routine func(ctx context.Context) error

// terminateWithSignal terminates the current process by sending a
// signal to itself.
func terminateWithSignal(currentPID int, terminationSignal os.Signal) {
	if runtime.GOOS == "windows" {
		// On Windows, process.Signal() is not supported so
		// immediately exit.
		os.Exit(1)
	}

	// Clear the signal handler and raise the original signal once
	// again. That way we shut down under the original
	// circumstances.
	signal.Reset(terminationSignal)
	process, err := os.FindProcess(currentPID)
	if err != nil {
		panic(err)
	}
	if err := process.Signal(terminationSignal); err != nil {
		panic(err)
	}

	// process.Signal() does not guarantee that the signal is
	// delivered to the same thread. Fall back to calling os.Exit()
	// if we don't get terminated via signal delivery.
	// https://github.com/golang/go/issues/19326
	time.Sleep(5)
	os.Exit(1)
}

var terminationSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// run a routine, canceling its context as soon as a signal arrives on
// signalChan. The signal that was received, if any, is returned along
// with the routine's error.
func run(ctx context.Context, signalChan <-chan os.Signal, routine Routine) (os.Signal, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	signalHandled := make(chan os.Signal, 1)
	go func() {
		select {
		case receivedSignal := <-signalChan:
			slog.Warn("Received signal. Initiating graceful shutdown.", "signal", receivedSignal.String())
			cancel()
			signalHandled <- receivedSignal
		case <-done:
			signalHandled <- nil
		}
	}()

	err := routine(ctx)
	close(done)
	return <-signalHandled, err
}

// RunMain runs a program that supports graceful termination. Programs
// terminate if one of the following three cases occur:
//
//   - The routine returns nil. In that case the program terminates
//     with exit code 0.
//
//   - The routine fails with a non-nil error. In that case the program
//     terminates with exit code 1.
//
//   - The program receives SIGINT or SIGTERM. In that case the context
//     of the routine is canceled. Once the routine returns, the program
//     terminates with that signal.
func RunMain(routine Routine) {
	// Install the signal handler first to ensure no signals are
	// missed.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, terminationSignals...)

	receivedSignal, err := run(context.Background(), signalChan, routine)
	if receivedSignal != nil {
		terminateWithSignal(os.Getpid(), receivedSignal)
	}
	if err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
	os.Exit(0)
}
