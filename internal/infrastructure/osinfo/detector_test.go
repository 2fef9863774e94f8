package osinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/appearance/internal/application/port"
)

var _ port.OSDetector = (*Detector)(nil)

func TestDetector_MacOSMojaveGate(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"10.13.6", false},
		{"10.13", false},
		{"10.14", true},
		{"10.14.0", true},
		{"10.15.7", true},
		{"11.0.1", true},
		{"14.5", true},
		{"", false},
		{"not-a-version", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			d := NewDetectorFor("darwin", tt.version, 0)

			assert.True(t, d.IsMacOS())
			assert.False(t, d.IsWindows())
			assert.Equal(t, tt.want, d.IsMacOSMojaveOrLater())
			assert.False(t, d.IsWindows10Build17666OrLater())
		})
	}
}

func TestDetector_WindowsBuildGate(t *testing.T) {
	tests := []struct {
		build uint32
		want  bool
	}{
		{0, false},
		{17134, false},
		{17665, false},
		{17666, true},
		{17763, true},
		{22631, true},
	}

	for _, tt := range tests {
		d := NewDetectorFor("windows", "", tt.build)

		assert.True(t, d.IsWindows())
		assert.False(t, d.IsMacOS())
		assert.Equal(t, tt.want, d.IsWindows10Build17666OrLater(), "build %d", tt.build)
		assert.False(t, d.IsMacOSMojaveOrLater())
	}
}

func TestDetector_OtherHost(t *testing.T) {
	d := NewDetectorFor("linux", "10.15", 20000)

	assert.False(t, d.IsMacOS())
	assert.False(t, d.IsWindows())
	assert.False(t, d.IsMacOSMojaveOrLater())
	assert.False(t, d.IsWindows10Build17666OrLater())
	assert.Empty(t, d.Version())
}

func TestDetector_Version(t *testing.T) {
	assert.Equal(t, "10.14.6", NewDetectorFor("darwin", "10.14.6", 0).Version())
	assert.Equal(t, "build 17763", NewDetectorFor("windows", "", 17763).Version())
	assert.Empty(t, NewDetectorFor("windows", "", 0).Version())
}

func TestNewDetector_ReportsRuntimeGOOS(t *testing.T) {
	d := NewDetector()
	assert.Equal(t, runtime.GOOS, d.GOOS())
}
