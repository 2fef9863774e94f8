//go:build darwin

package osinfo

import (
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// darwinToMacOSOffset maps Darwin kernel majors to 10.x releases
// (Darwin 18 is macOS 10.14).
const darwinToMacOSOffset = 4

func macOSProductVersion() string {
	if v, err := unix.Sysctl("kern.osproductversion"); err == nil && v != "" {
		return strings.TrimSpace(v)
	}

	// kern.osproductversion appeared in 10.13.4; older kernels only
	// expose the Darwin release.
	release, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return ""
	}
	major, err := strconv.Atoi(strings.SplitN(release, ".", 2)[0])
	if err != nil || major <= darwinToMacOSOffset {
		return ""
	}
	return "10." + strconv.Itoa(major-darwinToMacOSOffset)
}

func windowsBuildNumber() uint32 {
	return 0
}
