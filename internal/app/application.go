package app

import (
	"errors"
	"fmt"

	"renameme/internal/central"
	"renameme/internal/errorreport"
	"renameme/internal/logger"
	"renameme/internal/resources"
	"renameme/internal/settings"
	"renameme/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

const (
	AppID        = "io.github.renameme"
	AppName      = "Rename me"
	WindowWidth  = 1200
	WindowHeight = 800

	// themeEditorID names the project whose theme the editor works on.
	themeEditorID = "Xilam"
)

type SettingsStore interface {
	Load(keys ...string) (settings.Snapshot, error)
	Save(values map[string]any) error
}

// Deps are the collaborators of an Application. Logger and Themes get
// defaults when nil; Settings is required.
type Deps struct {
	Logger   logger.Logger
	Settings SettingsStore
	Themes   *theme.Library
	// EditorDir is where the theme editor saves its work.
	// Empty means the user config directory.
	EditorDir string
	// Exit is called after a fatal error has been reported. The default
	// quits the event loop.
	Exit func(code int)
}

type Application struct {
	fyneApp   fyne.App
	window    fyne.Window
	statusBar *StatusBar
	central   *central.Widget
	reporter  *errorreport.Reporter
	lifecycle *Lifecycle
	logger    logger.Logger

	settings  SettingsStore
	themes    *theme.Library
	editorDir string
	exit      func(code int)

	options Options
	// stored is options as backed by the settings file, without
	// environment overrides. Only this is written back on exit.
	stored         Options
	settingsLoaded bool
	editor         *theme.Editor
	exitCode       int
}

// New builds the main window around fyneApp. Initialization that may
// fail is deferred until Run starts the event loop.
func New(fyneApp fyne.App, opts Options, deps Deps) (*Application, error) {
	if fyneApp == nil {
		return nil, errors.New("nil fyne app")
	}
	if deps.Settings == nil {
		return nil, errors.New("settings store required")
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop{}
	}
	if deps.Themes == nil {
		deps.Themes = theme.NewLibrary(resources.Themes())
	}

	a := &Application{
		fyneApp:   fyneApp,
		logger:    deps.Logger,
		settings:  deps.Settings,
		themes:    deps.Themes,
		editorDir: deps.EditorDir,
		exit:      deps.Exit,
		options:   opts,
	}

	a.statusBar = NewStatusBar()

	a.window = fyneApp.NewWindow(AppName)
	a.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	a.window.SetMaster()

	a.central = central.New(a)
	a.window.SetContent(container.NewBorder(nil, a.statusBar.Container(), nil, nil, a.central))
	a.window.SetCloseIntercept(a.handleClose)

	a.reporter = errorreport.New(a.logger, a.Window, a.terminate)
	a.lifecycle = NewLifecycle(a.reporter, a.logger, a.initialize)
	a.lifecycle.Install(fyneApp.Lifecycle())

	a.logger.Info("application constructed", map[string]interface{}{
		"show_css_editor": opts.ShowCSSEditor,
		"theme":           opts.Theme,
	})
	return a, nil
}

// Run shows the main window and blocks until the event loop exits. The
// result is the process exit code.
func (a *Application) Run() int {
	a.window.Show()
	a.fyneApp.Run()

	a.logger.Info("application exited", map[string]interface{}{"code": a.exitCode})
	return a.exitCode
}

// Quit closes the main window. Preferences are saved first, but unlike a
// close requested from the window a failed save does not stop it.
func (a *Application) Quit() {
	if !a.confirmExit() {
		a.logger.Warning("closing without saved preferences", nil)
	}
	a.window.Close()
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Options() Options {
	return a.options
}

func (a *Application) StatusBar() *StatusBar {
	return a.statusBar
}

// SetStatusMessage shows message and hides the progress indicator.
func (a *Application) SetStatusMessage(message string) {
	a.statusBar.SetMessage(message)
}

// SetStatusProgress shows message with the progress indicator at
// progress percent.
func (a *Application) SetStatusProgress(message string, progress int) {
	a.statusBar.SetProgress(message, progress)
}

func (a *Application) initialize() error {
	if err := a.loadSettings(); err != nil {
		return err
	}
	if err := a.initTheme(); err != nil {
		return err
	}

	icon := resources.Icon()
	a.fyneApp.SetIcon(icon)
	a.window.SetIcon(icon)
	return nil
}

func (a *Application) loadSettings() error {
	snap, err := a.settings.Load(OptionKeys()...)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	stored, err := a.options.WithOverrides(snap.File)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	opts, err := stored.WithOverrides(snap.Env)
	if err != nil {
		return fmt.Errorf("load settings from environment: %w", err)
	}

	a.stored = stored
	a.options = opts
	a.settingsLoaded = true
	a.logger.Debug("settings loaded", map[string]interface{}{
		"file_keys":       len(snap.File),
		"env_keys":        len(snap.Env),
		"show_css_editor": opts.ShowCSSEditor,
		"theme":           opts.Theme,
	})
	return nil
}

// initTheme either opens the live theme editor or applies the configured
// theme, never both.
func (a *Application) initTheme() error {
	if a.options.ShowCSSEditor {
		a.logger.Info("loading theme editor", map[string]interface{}{"id": themeEditorID})
		editor, err := theme.NewEditor(a.fyneApp, a.themes, themeEditorID, theme.EditorOptions{
			BaseTheme: a.options.Theme,
			Dir:       a.editorDir,
			Logger:    a.logger,
		})
		if err != nil {
			return fmt.Errorf("open theme editor: %w", err)
		}
		a.editor = editor
		return nil
	}

	a.logger.Info("loading theme", map[string]interface{}{"theme": a.options.Theme})
	if err := a.themes.Apply(a.fyneApp, a.options.Theme); err != nil {
		return fmt.Errorf("apply theme: %w", err)
	}
	return nil
}

// confirmExit reports whether the window may close. Preferences are
// saved first; a failed save keeps the window open. Environment
// overrides are never saved.
func (a *Application) confirmExit() bool {
	return a.reporter.Check(labelConfirmExit, func() (bool, error) {
		if !a.settingsLoaded {
			return true, nil
		}
		if err := a.settings.Save(a.stored.Values()); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (a *Application) handleClose() {
	if !a.confirmExit() {
		a.logger.Info("close cancelled", nil)
		return
	}
	a.window.Close()
}

func (a *Application) terminate(code int) {
	a.exitCode = code
	if a.exit != nil {
		a.exit(code)
		return
	}
	a.fyneApp.Quit()
}
