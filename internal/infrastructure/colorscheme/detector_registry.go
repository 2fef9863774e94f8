package colorscheme

const (
	goosDarwin = "darwin"

	detectorNameRegistry = "AppsUseLightTheme"
	priorityRegistry     = 10

	personalizeKeyPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Themes\Personalize`
)

// registryReader reads a DWORD from HKEY_CURRENT_USER.
type registryReader func(path, name string) (uint64, error)

// RegistryDetector reads the Windows per-user AppsUseLightTheme value.
type RegistryDetector struct {
	read registryReader
}

// NewRegistryDetector creates a detector backed by the Windows registry.
// On other hosts it is never available.
func NewRegistryDetector() *RegistryDetector {
	return &RegistryDetector{read: readCurrentUserDWORD}
}

// Name implements port.ColorSchemeDetector.
func (*RegistryDetector) Name() string {
	return detectorNameRegistry
}

// Priority implements port.ColorSchemeDetector.
func (*RegistryDetector) Priority() int {
	return priorityRegistry
}

// Available implements port.ColorSchemeDetector.
func (d *RegistryDetector) Available() bool {
	return d.read != nil
}

// Detect implements port.ColorSchemeDetector.
// Builds before 1809 have no such value and report no preference.
func (d *RegistryDetector) Detect() (prefersDark, ok bool) {
	if d.read == nil {
		return false, false
	}
	useLight, err := d.read(personalizeKeyPath, "AppsUseLightTheme")
	if err != nil {
		return false, false
	}
	return useLight == 0, true
}
