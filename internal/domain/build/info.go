// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders the version line printed by --version.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	s := version
	if i.Commit != "" {
		s += " (" + i.Commit
		if i.BuildDate != "" {
			s += ", " + i.BuildDate
		}
		s += ")"
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	return s
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/appearance"
}
