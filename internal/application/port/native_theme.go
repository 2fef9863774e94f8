package port

import (
	"context"

	"github.com/bnema/appearance/internal/domain/entity"
)

// NativeThemeBridge is the host-side interface that applies theme and font
// changes to the window chrome and answers dark-mode queries.
type NativeThemeBridge interface {
	// SetNativeThemeSource asks the host to follow the given source.
	// It does not wait for the host to apply the change.
	SetNativeThemeSource(ctx context.Context, source entity.ThemeSource)

	// ShouldUseDarkColors reports whether dark colors should currently be used.
	ShouldUseDarkColors(ctx context.Context) bool

	// SetFontFaceSource asks the host to apply the font face.
	// It does not wait for the host to apply the change.
	SetFontFaceSource(ctx context.Context, fontFace string)
}
