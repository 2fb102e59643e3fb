package theme

import (
	"image/color"
	"testing"
	"testing/fstest"

	"fyne.io/fyne/v2/test"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redTheme = `{"Colors": {"background": "#ff0000ff"}}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"red.json":    {Data: []byte(redTheme)},
		"broken.json": {Data: []byte(`{"Colors": `)},
		"readme.txt":  {Data: []byte("not a theme")},
	}
}

func assertColor(t *testing.T, want, got color.Color) {
	t.Helper()
	wr, wg, wb, wa := want.RGBA()
	gr, gg, gb, ga := got.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{gr, gg, gb, ga})
}

func TestLibraryNames(t *testing.T) {
	names, err := NewLibrary(testFS()).Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "red"}, names)
}

func TestLibraryApply(t *testing.T) {
	app := test.NewTempApp(t)

	require.NoError(t, NewLibrary(testFS()).Apply(app, "red"))

	got := app.Settings().Theme().Color(fynetheme.ColorNameBackground, app.Settings().ThemeVariant())
	assertColor(t, color.NRGBA{R: 0xff, A: 0xff}, got)
}

func TestLibraryUnknownTheme(t *testing.T) {
	lib := NewLibrary(testFS())

	for _, name := range []string{"missing", "", "../red", `a\b`} {
		_, err := lib.Source(name)
		assert.ErrorIs(t, err, ErrUnknownTheme, name)
	}
}

func TestLibraryBrokenTheme(t *testing.T) {
	app := test.NewTempApp(t)
	before := app.Settings().Theme()

	err := NewLibrary(testFS()).Apply(app, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownTheme)
	assert.Equal(t, before, app.Settings().Theme())
}
