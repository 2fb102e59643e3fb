package errorreport

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	exits   []int
	shown   []error
	dismiss func()
}

func newTestReporter(t *testing.T, withWindow bool) (*Reporter, *recorder) {
	t.Helper()
	rec := &recorder{}

	var parent func() fyne.Window
	if withWindow {
		test.NewTempApp(t)
		win := test.NewWindow(nil)
		t.Cleanup(win.Close)
		parent = func() fyne.Window { return win }
	}

	r := New(nil, parent, func(code int) { rec.exits = append(rec.exits, code) })
	r.SetPresenter(func(err error, _ fyne.Window, onClosed func()) {
		rec.shown = append(rec.shown, err)
		rec.dismiss = onClosed
	})
	return r, rec
}

func TestRunSuccess(t *testing.T) {
	r, rec := newTestReporter(t, true)

	err := r.Run("Initialization", func() error { return nil }, ExitOnError())

	assert.NoError(t, err)
	assert.Empty(t, rec.shown)
	assert.Empty(t, rec.exits)
}

func TestRunFailureWithoutExit(t *testing.T) {
	r, rec := newTestReporter(t, true)
	cause := errors.New("disk full")

	err := r.Run("Save preferences on exit", func() error { return cause })

	require.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "Save preferences on exit: disk full")
	require.Len(t, rec.shown, 1)

	rec.dismiss()
	assert.Empty(t, rec.exits)
}

func TestRunFailureExitsAfterDismiss(t *testing.T) {
	r, rec := newTestReporter(t, true)

	err := r.Run("Initialization", func() error { return errors.New("boom") }, ExitOnError())

	require.Error(t, err)
	assert.Empty(t, rec.exits, "exit must wait for the dialog")

	rec.dismiss()
	assert.Equal(t, []int{1}, rec.exits)
}

func TestRunFailureWithoutWindowExitsImmediately(t *testing.T) {
	r, rec := newTestReporter(t, false)

	_ = r.Run("Initialization", func() error { return errors.New("boom") }, ExitOnError())

	assert.Empty(t, rec.shown)
	assert.Equal(t, []int{1}, rec.exits)
}

func TestRunRecoversPanic(t *testing.T) {
	r, rec := newTestReporter(t, true)

	err := r.Run("Initialization", func() error { panic("nil theme") })

	assert.EqualError(t, err, "Initialization: panic: nil theme")
	assert.Len(t, rec.shown, 1)
}

func TestCheck(t *testing.T) {
	r, rec := newTestReporter(t, true)

	assert.True(t, r.Check("confirm", func() (bool, error) { return true, nil }))
	assert.False(t, r.Check("confirm", func() (bool, error) { return false, nil }))
	assert.False(t, r.Check("confirm", func() (bool, error) { return true, errors.New("x") }))
	assert.Len(t, rec.shown, 1)
}

func TestShowErrorDialogUsesWindowOverlay(t *testing.T) {
	test.NewTempApp(t)
	win := test.NewWindow(nil)
	defer win.Close()

	showErrorDialog(errors.New("boom"), win, func() {})

	assert.NotNil(t, win.Canvas().Overlays().Top())
}
