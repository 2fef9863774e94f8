package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/appearance/internal/domain/entity"
)

// AppearanceRenderer renders theme and font command output.
type AppearanceRenderer struct {
	theme *Theme
}

// NewAppearanceRenderer creates a new renderer with the given theme.
func NewAppearanceRenderer(theme *Theme) *AppearanceRenderer {
	return &AppearanceRenderer{theme: theme}
}

// RenderTheme renders the persisted theme preference.
func (r *AppearanceRenderer) RenderTheme(theme entity.Theme) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s %s",
		iconStyle.Render(ThemeIcon(string(theme))),
		r.theme.Subtle.Render("theme"),
		r.theme.Highlight.Render(string(theme)),
	)
}

// RenderApplied renders the theme currently in effect.
func (r *AppearanceRenderer) RenderApplied(applied entity.ApplicableTheme, source string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	line := fmt.Sprintf("%s %s %s",
		iconStyle.Render(ThemeIcon(string(applied))),
		r.theme.Subtle.Render("applied"),
		r.theme.Highlight.Render(string(applied)),
	)
	if source != "" {
		line += " " + r.theme.MutedBadge(source)
	}
	return line
}

// RenderThemeSaved renders the confirmation after a theme change.
func (r *AppearanceRenderer) RenderThemeSaved(theme entity.Theme) string {
	return fmt.Sprintf("%s Theme set to %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(string(theme)),
	)
}

// RenderSupportsSystem renders whether the OS can drive the theme.
func (r *AppearanceRenderer) RenderSupportsSystem(supported bool, osName string) string {
	if supported {
		return fmt.Sprintf("%s %s supports following the system theme",
			r.theme.SuccessStyle.Render(IconCheck),
			r.theme.Normal.Render(osName),
		)
	}
	return fmt.Sprintf("%s %s does not support following the system theme",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Normal.Render(osName),
	)
}

// RenderFontFace renders the persisted font face.
func (r *AppearanceRenderer) RenderFontFace(fontFace string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconFont),
		r.theme.Subtle.Render("font-face"),
		r.theme.Highlight.Render(fontFace),
	)
}

// RenderFontSaved renders the confirmation after a font change.
func (r *AppearanceRenderer) RenderFontSaved(fontFace string) string {
	return fmt.Sprintf("%s Font face set to %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(fontFace),
	)
}

// RenderFontList renders one font per line.
func (r *AppearanceRenderer) RenderFontList(fonts []string) string {
	if len(fonts) == 0 {
		return r.theme.Subtle.Render("No fonts found")
	}
	var sb strings.Builder
	for _, f := range fonts {
		sb.WriteString(r.theme.Normal.Render(f))
		sb.WriteString("\n")
	}
	sb.WriteString(r.theme.Subtle.Render(fmt.Sprintf("%d families", len(fonts))))
	return sb.String()
}

// RenderWatching renders the header of `theme watch`.
func (r *AppearanceRenderer) RenderWatching(configFile string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s Watching appearance changes %s",
		iconStyle.Render(IconEye),
		r.theme.Subtle.Render("("+configFile+", ctrl+c to stop)"),
	)
}

// RenderError renders an error message.
func (r *AppearanceRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}
