package port

// OSDetector reports the host OS family and the version gates that matter
// for following the system appearance.
type OSDetector interface {
	IsMacOS() bool
	IsWindows() bool

	// IsMacOSMojaveOrLater is true on macOS 10.14 and later.
	IsMacOSMojaveOrLater() bool

	// IsWindows10Build17666OrLater is true from the Windows 10 1809
	// preview build 17666 onwards, the first build exposing the app
	// theme signal.
	IsWindows10Build17666OrLater() bool
}
