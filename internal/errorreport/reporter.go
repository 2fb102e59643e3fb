// Package errorreport runs UI operations and surfaces their failures to
// the log and to the user, optionally terminating the application.
package errorreport

import (
	"fmt"

	"renameme/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

type options struct {
	exitOnError bool
}

type Option func(*options)

// ExitOnError makes a failure fatal: the exit function is called with
// code 1 once the user dismisses the error dialog.
func ExitOnError() Option {
	return func(o *options) {
		o.exitOnError = true
	}
}

// Presenter shows err over win and calls onClosed once the user has
// dismissed it.
type Presenter func(err error, win fyne.Window, onClosed func())

type Reporter struct {
	log    logger.Logger
	parent func() fyne.Window
	exit   func(code int)
	show   Presenter
}

// New builds a reporter. parent may return nil when no window is
// available, in which case failures are only logged.
func New(log logger.Logger, parent func() fyne.Window, exit func(code int)) *Reporter {
	if log == nil {
		log = logger.Nop{}
	}
	if exit == nil {
		exit = func(int) {}
	}
	return &Reporter{
		log:    log,
		parent: parent,
		exit:   exit,
		show:   showErrorDialog,
	}
}

// SetPresenter replaces the default error dialog.
func (r *Reporter) SetPresenter(p Presenter) {
	r.show = p
}

// Run executes fn. A returned error or a panic is wrapped with label,
// logged, shown to the user and returned.
func (r *Reporter) Run(label string, fn func() error, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	err := protect(fn)
	if err == nil {
		return nil
	}

	err = fmt.Errorf("%s: %w", label, err)
	r.report(label, err, o.exitOnError)
	return err
}

// Check runs a predicate under Run. Failure counts as false.
func (r *Reporter) Check(label string, fn func() (bool, error), opts ...Option) bool {
	var ok bool
	err := r.Run(label, func() error {
		var err error
		ok, err = fn()
		return err
	}, opts...)
	return err == nil && ok
}

func (r *Reporter) report(label string, err error, exit bool) {
	r.log.Error("operation failed", err, map[string]interface{}{
		"operation": label,
		"exit":      exit,
	})

	onClosed := func() {}
	if exit {
		onClosed = func() {
			r.log.Info("exiting after fatal error", map[string]interface{}{"operation": label})
			r.exit(1)
		}
	}

	var win fyne.Window
	if r.parent != nil {
		win = r.parent()
	}
	if win == nil {
		onClosed()
		return
	}
	r.show(err, win, onClosed)
}

func protect(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn()
}

func showErrorDialog(err error, win fyne.Window, onClosed func()) {
	d := dialog.NewError(err, win)
	d.SetOnClosed(onClosed)
	d.Show()
}
