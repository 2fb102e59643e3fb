// Package resources bundles the icon and theme assets shipped with the binary.
package resources

import (
	"embed"
	"io/fs"

	"fyne.io/fyne/v2"
)

const (
	IconFilename = "icon.png"
	themesDir    = "themes"
)

//go:embed icon.png themes/*.json
var files embed.FS

var icon = mustStatic(IconFilename)

// Icon returns the application icon.
func Icon() fyne.Resource {
	return icon
}

// Themes returns the directory of bundled JSON themes.
func Themes() fs.FS {
	sub, err := fs.Sub(files, themesDir)
	if err != nil {
		panic(err)
	}
	return sub
}

func mustStatic(name string) fyne.Resource {
	data, err := files.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return fyne.NewStaticResource(name, data)
}
