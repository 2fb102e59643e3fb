package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	progressMax   = 100
	progressWidth = 160
)

// StatusBar shows a message on the left and a permanent progress
// indicator on the right that is hidden unless a task reports progress.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	progressBar *widget.ProgressBar
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("")
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis

	sb.progressBar = widget.NewProgressBar()
	sb.progressBar.Max = progressMax
	sb.progressBar.TextFormatter = func() string { return "" }
	sb.progressBar.Hide()
}

func (sb *StatusBar) buildLayout() {
	size := fyne.NewSize(progressWidth, sb.progressBar.MinSize().Height)
	progress := container.New(layout.NewGridWrapLayout(size), sb.progressBar)

	sb.container = container.NewBorder(nil, nil, nil, progress, sb.statusLabel)
}

// SetMessage shows message and hides the progress indicator.
func (sb *StatusBar) SetMessage(message string) {
	sb.progressBar.Hide()
	sb.statusLabel.SetText(message)
}

// SetProgress shows message with the progress indicator at value,
// clamped to 0..100.
func (sb *StatusBar) SetProgress(message string, value int) {
	if value < 0 {
		value = 0
	} else if value > progressMax {
		value = progressMax
	}

	sb.progressBar.SetValue(float64(value))
	sb.progressBar.Show()
	sb.statusLabel.SetText(message)
}

func (sb *StatusBar) Message() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) Progress() int {
	return int(sb.progressBar.Value)
}

func (sb *StatusBar) ProgressVisible() bool {
	return sb.progressBar.Visible()
}

func (sb *StatusBar) Container() *fyne.Container {
	return sb.container
}
