package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10

	gnomeInterfaceSchema = "org.gnome.desktop.interface"
)

// GsettingsDetector detects color scheme from GNOME gsettings.
type GsettingsDetector struct {
	run      commandRunner
	lookPath pathLooker
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: execOutput, lookPath: exec.LookPath}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Available() bool {
	_, err := d.lookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// Reads color-scheme; when it is "default" the gtk-theme name is used instead.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	scheme, err := d.get("color-scheme")
	if err != nil {
		return false, false
	}

	switch scheme {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	}

	// Older desktops leave color-scheme at "default" and encode the
	// preference in the theme name (Adwaita-dark, Yaru-dark, ...).
	theme, err := d.get("gtk-theme")
	if err != nil || theme == "" {
		return false, false
	}
	return strings.HasSuffix(strings.ToLower(theme), "-dark"), true
}

func (d *GsettingsDetector) get(key string) (string, error) {
	output, err := d.run("gsettings", "get", gnomeInterfaceSchema, key)
	if err != nil {
		return "", err
	}
	// Output is like "'prefer-dark'\n"
	result := strings.TrimSpace(string(output))
	return strings.Trim(result, "'\""), nil
}
