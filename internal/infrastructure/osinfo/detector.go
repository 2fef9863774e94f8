// Package osinfo reports the host OS family and the version gates used to
// decide whether the application can follow the system appearance.
package osinfo

import (
	"runtime"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

const (
	goosDarwin  = "darwin"
	goosWindows = "windows"

	// windows10Build17666 is the 1809 preview build that first exposed
	// the AppsUseLightTheme signal to desktop applications.
	windows10Build17666 = 17666
)

// macOSMojave is macOS 10.14, the first release with a system dark mode.
var macOSMojave = semver.MustParse("10.14.0")

// Detector implements port.OSDetector.
type Detector struct {
	goos         string
	macOSVersion string
	windowsBuild uint32
}

// NewDetector creates a detector for the running host.
func NewDetector() *Detector {
	return &Detector{
		goos:         runtime.GOOS,
		macOSVersion: macOSProductVersion(),
		windowsBuild: windowsBuildNumber(),
	}
}

// NewDetectorFor creates a detector reporting the given host.
// macOSVersion is a product version such as "10.14.6"; windowsBuild is the
// Windows build number.
func NewDetectorFor(goos, macOSVersion string, windowsBuild uint32) *Detector {
	return &Detector{
		goos:         goos,
		macOSVersion: macOSVersion,
		windowsBuild: windowsBuild,
	}
}

// IsMacOS implements port.OSDetector.
func (d *Detector) IsMacOS() bool {
	return d.goos == goosDarwin
}

// IsWindows implements port.OSDetector.
func (d *Detector) IsWindows() bool {
	return d.goos == goosWindows
}

// IsMacOSMojaveOrLater implements port.OSDetector.
// An unknown or unparsable version is treated as too old.
func (d *Detector) IsMacOSMojaveOrLater() bool {
	if !d.IsMacOS() || d.macOSVersion == "" {
		return false
	}
	v, err := semver.NewVersion(d.macOSVersion)
	if err != nil {
		return false
	}
	return !v.LessThan(macOSMojave)
}

// IsWindows10Build17666OrLater implements port.OSDetector.
func (d *Detector) IsWindows10Build17666OrLater() bool {
	return d.IsWindows() && d.windowsBuild >= windows10Build17666
}

// GOOS returns the OS family this detector reports.
func (d *Detector) GOOS() string {
	return d.goos
}

// Version returns a human-readable OS version, empty when unknown.
func (d *Detector) Version() string {
	switch d.goos {
	case goosDarwin:
		return d.macOSVersion
	case goosWindows:
		if d.windowsBuild == 0 {
			return ""
		}
		return "build " + strconv.FormatUint(uint64(d.windowsBuild), 10)
	default:
		return ""
	}
}
