package app

import (
	"renameme/internal/errorreport"
	"renameme/internal/logger"

	"fyne.io/fyne/v2"
)

const (
	labelInitialization = "Initialization"
	labelConfirmExit    = "Save preferences on exit"
)

// Lifecycle defers initialization until the event loop is running, so
// failures are reported through the UI instead of before it exists.
type Lifecycle struct {
	reporter    *errorreport.Reporter
	logger      logger.Logger
	initialize  func() error
	initialized bool
}

func NewLifecycle(reporter *errorreport.Reporter, log logger.Logger, initialize func() error) *Lifecycle {
	return &Lifecycle{
		reporter:   reporter,
		logger:     log,
		initialize: initialize,
	}
}

func (l *Lifecycle) Install(lc fyne.Lifecycle) {
	lc.SetOnStarted(l.Started)
	lc.SetOnStopped(l.Stopped)
}

// Started runs initialization once. A failure is fatal.
func (l *Lifecycle) Started() {
	if l.initialized {
		return
	}
	l.initialized = true

	l.logger.Debug("event loop started", nil)
	if err := l.reporter.Run(labelInitialization, l.initialize, errorreport.ExitOnError()); err == nil {
		l.logger.Info("initialization complete", nil)
	}
}

func (l *Lifecycle) Stopped() {
	l.logger.Info("event loop stopped", nil)
}
