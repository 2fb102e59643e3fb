// Package shutdown turns OS termination signals into an orderly close of
// the UI.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"renameme/internal/logger"

	"fyne.io/fyne/v2"
)

type Listener struct {
	logger logger.Logger
	quit   func()
	// run executes quit on the UI goroutine.
	run func(func())

	mu      sync.Mutex
	stop    context.CancelFunc
	done    chan struct{}
	signals []os.Signal
}

// NewListener calls quit on the UI goroutine when SIGINT or SIGTERM
// arrives.
func NewListener(log logger.Logger, quit func()) *Listener {
	if log == nil {
		log = logger.Nop{}
	}
	return &Listener{
		logger:  log,
		quit:    quit,
		run:     fyne.Do,
		signals: []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
}

// Listen starts watching in the background. Cancelling ctx or calling
// Stop detaches without quitting.
func (l *Listener) Listen(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stop != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, l.signals...)

	l.stop = cancel
	l.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			l.logger.Info("shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			l.run(l.quit)
		case <-ctx.Done():
		}
	}(l.done)
}

// Stop detaches the listener and waits for its goroutine to exit.
func (l *Listener) Stop() {
	l.mu.Lock()
	stop, done := l.stop, l.done
	l.stop, l.done = nil, nil
	l.mu.Unlock()

	if stop == nil {
		return
	}
	stop()
	<-done
}
