package colorscheme

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

const (
	detectorNameDefaults = "AppleInterfaceStyle"
	priorityDefaults     = 10
)

// DefaultsDetector reads the macOS global AppleInterfaceStyle default.
type DefaultsDetector struct {
	goos     string
	run      commandRunner
	lookPath pathLooker
}

// NewDefaultsDetector creates a detector backed by `defaults read`.
func NewDefaultsDetector() *DefaultsDetector {
	return &DefaultsDetector{goos: runtime.GOOS, run: execOutput, lookPath: exec.LookPath}
}

// Name implements port.ColorSchemeDetector.
func (*DefaultsDetector) Name() string {
	return detectorNameDefaults
}

// Priority implements port.ColorSchemeDetector.
func (*DefaultsDetector) Priority() int {
	return priorityDefaults
}

// Available implements port.ColorSchemeDetector.
func (d *DefaultsDetector) Available() bool {
	if d.goos != goosDarwin {
		return false
	}
	_, err := d.lookPath("defaults")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// The key only exists in dark mode, so a non-zero exit means light.
func (d *DefaultsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run("defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, true
		}
		return false, false
	}
	return strings.EqualFold(strings.TrimSpace(string(output)), "Dark"), true
}
