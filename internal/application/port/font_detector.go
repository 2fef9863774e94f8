package port

import "context"

// FontListOptions controls how installed font names are reported.
type FontListOptions struct {
	// DisableQuoting returns raw family names. When false, names that
	// contain whitespace are wrapped in double quotes so they can be used
	// directly in a CSS font-family list.
	DisableQuoting bool
}

// FontLister enumerates the font families installed on the host.
type FontLister interface {
	// ListInstalledFonts returns a point-in-time snapshot of installed
	// font families, sorted by name.
	ListInstalledFonts(ctx context.Context, opts FontListOptions) ([]string, error)

	// IsAvailable returns true if font enumeration works on this system.
	IsAvailable(ctx context.Context) bool
}
