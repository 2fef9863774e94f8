//go:build !darwin && !windows

package osinfo

func macOSProductVersion() string {
	return ""
}

func windowsBuildNumber() uint32 {
	return 0
}
