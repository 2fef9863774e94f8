//go:build gtk

// Package gtkchrome pushes theme and font changes into the default GTK
// settings object so native window chrome follows the user's preference.
package gtkchrome

import (
	"context"
	"errors"
	"strings"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/appearance/internal/domain/entity"
	"github.com/bnema/appearance/internal/infrastructure/nativetheme"
	"github.com/bnema/appearance/internal/logging"
)

const (
	propPreferDark = "gtk-application-prefer-dark-theme"
	propFontName   = "gtk-font-name"

	// defaultFontSize is appended to gtk-font-name, which needs a size.
	defaultFontSize = "11"
)

// ErrNoSettings is returned when GTK has no default display yet.
var ErrNoSettings = errors.New("gtk settings unavailable")

var _ nativetheme.Applier = (*Applier)(nil)

// Applier implements nativetheme.Applier on top of gtk.Settings.
// All GTK calls are marshalled onto the main loop.
type Applier struct{}

// NewApplier creates a GTK applier. gtk.Init must have been called.
func NewApplier() *Applier {
	return &Applier{}
}

// ApplyThemeSource implements nativetheme.Applier.
func (*Applier) ApplyThemeSource(ctx context.Context, source entity.ThemeSource, prefersDark bool) error {
	log := logging.FromContext(ctx)
	return onMain(func(settings *gtk.Settings) {
		settings.SetObjectProperty(propPreferDark, prefersDark)
		log.Debug().
			Str("source", string(source)).
			Bool("prefers_dark", prefersDark).
			Msg("set " + propPreferDark)
	})
}

// ApplyFontFace implements nativetheme.Applier.
func (*Applier) ApplyFontFace(ctx context.Context, fontFace string) error {
	family := FirstFamily(fontFace)
	if family == "" {
		return nil
	}
	log := logging.FromContext(ctx)
	return onMain(func(settings *gtk.Settings) {
		settings.SetObjectProperty(propFontName, family+" "+defaultFontSize)
		log.Debug().Str("family", family).Msg("set " + propFontName)
	})
}

// FirstFamily returns the first family of a CSS font-family list without
// quotes, e.g. `"Helvetica Neue", Arial` yields "Helvetica Neue".
func FirstFamily(fontFace string) string {
	first, _, _ := strings.Cut(fontFace, ",")
	return strings.Trim(strings.TrimSpace(first), `"'`)
}

func onMain(fn func(*gtk.Settings)) error {
	if gtk.SettingsGetDefault() == nil {
		return ErrNoSettings
	}
	coreglib.IdleAdd(func() {
		if settings := gtk.SettingsGetDefault(); settings != nil {
			fn(settings)
		}
	})
	return nil
}
