package entity

// Theme is a user-selectable appearance.
// ThemeSystem means "follow the OS appearance signal".
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ApplicableTheme is a concrete theme that can be applied to the UI.
// It is always ThemeLight or ThemeDark, never ThemeSystem.
type ApplicableTheme = Theme

// ThemeSource is the string form of a theme used for persistence and
// for signaling the native bridge.
type ThemeSource string

const (
	ThemeSourceLight  ThemeSource = "light"
	ThemeSourceDark   ThemeSource = "dark"
	ThemeSourceSystem ThemeSource = "system"
)

// Themes lists every user-selectable theme in display order.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark, ThemeSystem}
}

// ResolveThemeName maps a theme to its source name.
// Anything that is not light or dark resolves to system.
func ResolveThemeName(theme Theme) ThemeSource {
	switch theme {
	case ThemeLight:
		return ThemeSourceLight
	case ThemeDark:
		return ThemeSourceDark
	default:
		return ThemeSourceSystem
	}
}

// ParseThemeSetting interprets a persisted theme value.
// Only the exact strings "light" and "dark" are honored; any other
// value, including "system", yields ThemeSystem.
func ParseThemeSetting(value string) Theme {
	switch Theme(value) {
	case ThemeLight, ThemeDark:
		return Theme(value)
	default:
		return ThemeSystem
	}
}

// ParseTheme validates user input naming a theme.
func ParseTheme(value string) (Theme, bool) {
	switch Theme(value) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(value), true
	default:
		return "", false
	}
}

// ApplicableFromDark maps a dark-colors answer to the applied theme.
func ApplicableFromDark(dark bool) ApplicableTheme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// Preference store keys.
const (
	PreferenceKeyTheme           = "theme"
	PreferenceKeyFontFace        = "font-face"
	PreferenceKeyLegacyAutoTheme = "autoSwitchTheme"
)

// PersistedFontFaceFallback is returned when no font face has been persisted.
// The truncated generic family is kept as stored by earlier releases.
const PersistedFontFaceFallback = `"Helvetica Neue", Helvetica, Arial, sans-seri`

// PickerFontFaceFallback is the font face the picker displays and reports
// when no selection was supplied.
const PickerFontFaceFallback = `"Helvetica Neue", Helvetica, Arial, sans-serif`
