package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"renameme/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const savedThemeFile = "theme.json"

type EditorOptions struct {
	// BaseTheme seeds the editor when nothing has been saved for the id.
	BaseTheme string
	// Dir holds saved themes as <Dir>/<id>/theme.json.
	// Defaults to the user config directory.
	Dir    string
	Logger logger.Logger
}

// Editor is a developer window that edits theme JSON and applies every
// valid revision to the running application.
type Editor struct {
	app  fyne.App
	lib  *Library
	id   string
	opts EditorOptions

	window fyne.Window
	entry  *widget.Entry
	status *widget.Label

	applied string
}

func NewEditor(app fyne.App, lib *Library, id string, opts EditorOptions) (*Editor, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return nil, fmt.Errorf("invalid editor id %q", id)
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	if opts.Dir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locate config dir: %w", err)
		}
		opts.Dir = dir
	}

	e := &Editor{app: app, lib: lib, id: id, opts: opts}

	src, err := e.initialSource()
	if err != nil {
		return nil, err
	}

	e.buildWindow(src)
	if err := e.Apply(src); err != nil {
		e.opts.Logger.Warning("saved theme is invalid", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
	}
	e.window.Show()

	e.opts.Logger.Info("theme editor opened", map[string]interface{}{
		"id":   id,
		"path": e.SavePath(),
	})
	return e, nil
}

func (e *Editor) initialSource() (string, error) {
	data, err := os.ReadFile(e.SavePath())
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return e.lib.Source(e.opts.BaseTheme)
	default:
		return "", fmt.Errorf("read saved theme: %w", err)
	}
}

func (e *Editor) buildWindow(src string) {
	e.window = e.app.NewWindow("Theme editor - " + e.id)

	e.entry = widget.NewMultiLineEntry()
	e.entry.TextStyle = fyne.TextStyle{Monospace: true}
	e.entry.SetText(src)
	e.entry.OnChanged = func(text string) {
		_ = e.Apply(text)
	}

	e.status = widget.NewLabel("")
	e.status.Truncation = fyne.TextTruncateEllipsis

	save := widget.NewButton("Save", func() {
		if err := e.Save(); err != nil {
			e.status.SetText("Save failed: " + err.Error())
		}
	})
	revert := widget.NewButton("Revert", func() {
		if err := e.Revert(); err != nil {
			e.status.SetText("Revert failed: " + err.Error())
		}
	})

	bottom := container.NewBorder(nil, nil, container.NewHBox(save, revert), nil, e.status)
	e.window.SetContent(container.NewBorder(nil, bottom, nil, nil, e.entry))
	e.window.Resize(fyne.NewSize(560, 720))
}

// Apply parses src and, when valid, makes it the application theme.
// Invalid input leaves the current theme untouched.
func (e *Editor) Apply(src string) error {
	th, err := fynetheme.FromJSON(src)
	if err != nil {
		e.status.SetText("Invalid theme: " + err.Error())
		return err
	}

	e.app.Settings().SetTheme(th)
	e.applied = src
	e.status.SetText("Applied")
	return nil
}

// Save writes the last applied revision.
func (e *Editor) Save() error {
	if e.applied == "" {
		return errors.New("no valid theme to save")
	}

	path := e.SavePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir theme dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(e.applied), 0o600); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write theme: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write theme: %w", err)
	}

	e.status.SetText("Saved to " + path)
	e.opts.Logger.Info("theme saved", map[string]interface{}{"path": path})
	return nil
}

// Revert discards edits and reloads the base theme.
func (e *Editor) Revert() error {
	src, err := e.lib.Source(e.opts.BaseTheme)
	if err != nil {
		return err
	}

	e.entry.SetText(src)
	return e.Apply(src)
}

func (e *Editor) SavePath() string {
	return filepath.Join(e.opts.Dir, e.id, savedThemeFile)
}

func (e *Editor) Text() string {
	return e.entry.Text
}

func (e *Editor) SetText(src string) {
	e.entry.SetText(src)
	_ = e.Apply(src)
}

func (e *Editor) Status() string {
	return e.status.Text
}

func (e *Editor) Window() fyne.Window {
	return e.window
}
