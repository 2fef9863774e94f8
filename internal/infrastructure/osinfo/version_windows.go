//go:build windows

package osinfo

import "golang.org/x/sys/windows"

func macOSProductVersion() string {
	return ""
}

// windowsBuildNumber uses RtlGetVersion, which is not subject to the
// manifest-based version lie of GetVersionEx.
func windowsBuildNumber() uint32 {
	info := windows.RtlGetVersion()
	if info == nil {
		return 0
	}
	return info.BuildNumber
}
