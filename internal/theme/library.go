// Package theme loads Fyne JSON themes from a resource directory and
// provides a live editor for developing them.
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

const themeExt = ".json"

var ErrUnknownTheme = errors.New("unknown theme")

// Library resolves theme names to <name>.json files in fsys.
type Library struct {
	fsys fs.FS
}

func NewLibrary(fsys fs.FS) *Library {
	return &Library{fsys: fsys}
}

// Names lists the available themes, sorted.
func (l *Library) Names() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "*"+themeExt)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, themeExt))
	}
	sort.Strings(names)
	return names, nil
}

// Source returns the raw JSON of the named theme.
func (l *Library) Source(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	data, err := fs.ReadFile(l.fsys, path.Clean(name+themeExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
		}
		return "", fmt.Errorf("read theme %q: %w", name, err)
	}
	return string(data), nil
}

func (l *Library) Load(name string) (fyne.Theme, error) {
	src, err := l.Source(name)
	if err != nil {
		return nil, err
	}

	th, err := fynetheme.FromJSON(src)
	if err != nil {
		return nil, fmt.Errorf("parse theme %q: %w", name, err)
	}
	return th, nil
}

// Apply makes the named theme current for the whole application.
func (l *Library) Apply(app fyne.App, name string) error {
	th, err := l.Load(name)
	if err != nil {
		return err
	}

	app.Settings().SetTheme(th)
	return nil
}
