// Package central holds the main content area of the window.
package central

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusReporter is the part of the application the content area may
// use to report what it is doing.
type StatusReporter interface {
	SetStatusMessage(message string)
	SetStatusProgress(message string, progress int)
}

// Widget is a placeholder for the application's real content.
type Widget struct {
	widget.BaseWidget

	reporter StatusReporter
	title    *widget.Label
}

func New(reporter StatusReporter) *Widget {
	w := &Widget{
		reporter: reporter,
		title:    widget.NewLabelWithStyle("Rename me", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}
	w.ExtendBaseWidget(w)
	reporter.SetStatusMessage("Ready")
	return w
}

func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewCenter(w.title))
}
