package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconFont    = "\uf031" // font
	IconSun     = "\uf185" // sun
	IconMoon    = "\uf186" // moon
	IconDesktop = "\uf108" // desktop (follow system)
	IconEye     = "\uf06e" // eye (watching)
)

const (
	cursorEmpty    = "  "
	cursorSelected = "\u25b8 " // Black right-pointing small triangle
)

// ThemeIcon returns the icon for a theme value.
func ThemeIcon(name string) string {
	switch name {
	case "light":
		return IconSun
	case "dark":
		return IconMoon
	default:
		return IconDesktop
	}
}
