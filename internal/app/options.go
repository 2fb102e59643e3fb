package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

const (
	keyShowCSSEditor = "show_css_editor"
	keyTheme         = "theme"

	DefaultTheme = "theme-dark"
)

// Options toggles optional developer features. Persisted settings are
// merged into it at startup.
type Options struct {
	ShowCSSEditor bool
	Theme         string
}

func DefaultOptions() Options {
	return Options{Theme: DefaultTheme}
}

// OptionKeys lists the settings keys Options accepts.
func OptionKeys() []string {
	return []string{keyShowCSSEditor, keyTheme}
}

// Values is the persisted form of o.
func (o Options) Values() map[string]any {
	return map[string]any{
		keyShowCSSEditor: o.ShowCSSEditor,
		keyTheme:         o.Theme,
	}
}

// WithOverrides returns a copy of o with values applied. Keys outside
// OptionKeys and values of the wrong type are rejected; o is never
// partially updated.
func (o Options) WithOverrides(values map[string]any) (Options, error) {
	var unknown []string
	for key := range values {
		switch key {
		case keyShowCSSEditor, keyTheme:
		default:
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return o, fmt.Errorf("unknown settings: %s", strings.Join(unknown, ", "))
	}

	out := o
	if raw, ok := values[keyShowCSSEditor]; ok {
		v, err := cast.ToBoolE(raw)
		if err != nil {
			return o, fmt.Errorf("setting %s: %w", keyShowCSSEditor, err)
		}
		out.ShowCSSEditor = v
	}
	if raw, ok := values[keyTheme]; ok {
		v, err := cast.ToStringE(raw)
		if err != nil {
			return o, fmt.Errorf("setting %s: %w", keyTheme, err)
		}
		if strings.TrimSpace(v) == "" {
			return o, fmt.Errorf("setting %s: %w", keyTheme, errors.New("empty theme name"))
		}
		out.Theme = v
	}
	return out, nil
}
