package colorscheme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/infrastructure/config"
)

var _ port.ColorSchemeResolver = (*Resolver)(nil)

type stubConfig struct {
	mu           sync.Mutex
	override     string
	fallbackDark bool
}

func (c *stubConfig) GetColorSchemeOverride() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.override
}

func (c *stubConfig) GetFallbackDark() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fallbackDark
}

func (c *stubConfig) setOverride(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.override = v
}

// osDetector answers like a platform check whose reply can change between
// refreshes. ok=false means the check ran but could not tell.
type osDetector struct {
	mu        sync.Mutex
	name      string
	priority  int
	available bool
	dark      bool
	ok        bool
}

func newOSDetector(name string, priority int, dark bool) *osDetector {
	return &osDetector{name: name, priority: priority, available: true, dark: dark, ok: true}
}

func (d *osDetector) Name() string  { return d.name }
func (d *osDetector) Priority() int { return d.priority }

func (d *osDetector) Available() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.available
}

func (d *osDetector) Detect() (bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dark, d.ok
}

func (d *osDetector) setDark(dark bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dark = dark
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *stubConfig
		detectors  []*osDetector
		wantDark   bool
		wantSource string
	}{
		{
			name:       "override wins over detectors",
			cfg:        &stubConfig{override: "  Prefer-Light "},
			detectors:  []*osDetector{newOSDetector("gsettings", 50, true)},
			wantDark:   false,
			wantSource: sourceConfig,
		},
		{
			name:       "short override form",
			cfg:        &stubConfig{override: "dark"},
			wantDark:   true,
			wantSource: sourceConfig,
		},
		{
			name: "highest available priority answers",
			cfg:  &stubConfig{override: "default"},
			detectors: []*osDetector{
				newOSDetector("low", 10, false),
				newOSDetector("high", 90, true),
			},
			wantDark:   true,
			wantSource: "high",
		},
		{
			name: "unavailable and undecided detectors are skipped",
			cfg:  &stubConfig{override: "default"},
			detectors: []*osDetector{
				{name: "gone", priority: 90},
				{name: "unsure", priority: 80, available: true, dark: true},
				newOSDetector("env", 10, false),
			},
			wantDark:   false,
			wantSource: "env",
		},
		{
			name:       "no answer uses configured light fallback",
			cfg:        &stubConfig{override: "default", fallbackDark: false},
			detectors:  []*osDetector{{name: "gone", priority: 90}},
			wantDark:   false,
			wantSource: sourceFallback,
		},
		{
			name:       "no answer uses configured dark fallback",
			cfg:        &stubConfig{override: "", fallbackDark: true},
			wantDark:   true,
			wantSource: sourceFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.cfg)
			for _, d := range tt.detectors {
				r.RegisterDetector(d)
			}

			pref := r.Resolve()

			assert.Equal(t, tt.wantDark, pref.PrefersDark)
			assert.Equal(t, tt.wantSource, pref.Source)
		})
	}
}

func TestResolver_NilConfigFallsBackToDark(t *testing.T) {
	r := NewResolver(nil)

	assert.Equal(t, port.ColorSchemePreference{PrefersDark: true, Source: sourceFallback}, r.Resolve())
	assert.Equal(t, r.Resolve(), r.Current())
}

func TestResolver_CurrentTracksRefreshNotResolve(t *testing.T) {
	cfg := &stubConfig{override: "default", fallbackDark: false}
	r := NewResolver(cfg)

	// Before any refresh Current reports the configured fallback.
	assert.Equal(t, port.ColorSchemePreference{PrefersDark: false, Source: sourceFallback}, r.Current())

	gs := newOSDetector("gsettings", 50, true)
	r.RegisterDetector(gs)

	assert.Equal(t, "gsettings", r.Resolve().Source)
	assert.Equal(t, sourceFallback, r.Current().Source, "Resolve must not move Current")

	r.Refresh()
	assert.Equal(t, port.ColorSchemePreference{PrefersDark: true, Source: "gsettings"}, r.Current())
}

func TestResolver_DetectorsOrdering(t *testing.T) {
	r := NewResolver(nil)
	r.RegisterDetector(newOSDetector("registry", 40, false))
	r.RegisterDetector(newOSDetector("env", 100, false))
	r.RegisterDetector(newOSDetector("defaults", 40, false))
	r.RegisterDetector(newOSDetector("gsettings", 60, false))

	assert.Equal(t, []string{"env", "gsettings", "registry", "defaults"}, r.Detectors())
}

func TestResolver_DetectorsEmpty(t *testing.T) {
	assert.Empty(t, NewResolver(nil).Detectors())
}

func TestResolver_RefreshCallbacks(t *testing.T) {
	cfg := &stubConfig{override: "default", fallbackDark: false}
	r := NewResolver(cfg)
	gs := newOSDetector("gsettings", 50, false)
	r.RegisterDetector(gs)

	var got []port.ColorSchemePreference
	unregister := r.OnChange(func(p port.ColorSchemePreference) { got = append(got, p) })

	// Same darkness, different source: no callback.
	r.Refresh()
	assert.Empty(t, got)
	assert.Equal(t, "gsettings", r.Current().Source)

	gs.setDark(true)
	pref := r.Refresh()
	require.Len(t, got, 1)
	assert.Equal(t, pref, got[0])

	// Config override flips it back.
	cfg.setOverride("light")
	r.Refresh()
	require.Len(t, got, 2)
	assert.Equal(t, port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}, got[1])

	unregister()
	cfg.setOverride("dark")
	r.Refresh()
	assert.Len(t, got, 2)
	assert.True(t, r.Current().PrefersDark)
}

func TestResolver_CallbackMayReadResolver(t *testing.T) {
	r := NewResolver(&stubConfig{override: "default"})
	gs := newOSDetector("gsettings", 50, true)
	r.RegisterDetector(gs)

	// Callbacks run after the lock is released, so reading back is safe.
	var seen port.ColorSchemePreference
	r.OnChange(func(port.ColorSchemePreference) {
		seen = r.Current()
		_ = r.Detectors()
	})

	r.Refresh()
	assert.Equal(t, port.ColorSchemePreference{PrefersDark: true, Source: "gsettings"}, seen)
}

func TestResolver_ConcurrentRefresh(t *testing.T) {
	r := NewResolver(&stubConfig{override: "default"})
	gs := newOSDetector("gsettings", 50, false)
	r.RegisterDetector(gs)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gs.setDark(i%2 == 0)
			r.Refresh()
			_ = r.Current()
			_ = r.Detectors()
			unregister := r.OnChange(func(port.ColorSchemePreference) {})
			unregister()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "gsettings", r.Current().Source)
}

func TestConfigAdapter_ReadsReloadedConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	adapter := NewConfigAdapter(func() *config.Config { return cfg })
	r := NewResolver(adapter)

	assert.Equal(t, sourceFallback, r.Refresh().Source)
	assert.Equal(t, cfg.Appearance.FallbackDark, r.Current().PrefersDark)

	next := *cfg
	next.Appearance.ColorSchemeOverride = config.ColorSchemePreferLight
	cfg = &next

	assert.Equal(t, port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}, r.Refresh())
}

func TestConfigAdapter_NilConfig(t *testing.T) {
	adapter := NewConfigAdapter(func() *config.Config { return nil })

	assert.Empty(t, adapter.GetColorSchemeOverride())
	assert.True(t, adapter.GetFallbackDark())

	var nilAdapter *ConfigAdapter
	assert.True(t, nilAdapter.GetFallbackDark())
}
