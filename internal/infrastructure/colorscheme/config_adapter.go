package colorscheme

import (
	"github.com/bnema/appearance/internal/infrastructure/config"
)

// ConfigAdapter adapts config.Config to the ConfigProvider interface.
type ConfigAdapter struct {
	cfg func() *config.Config
}

// NewConfigAdapter creates an adapter that reads the config returned by get
// on every resolution, so reloaded values take effect.
func NewConfigAdapter(get func() *config.Config) *ConfigAdapter {
	return &ConfigAdapter{cfg: get}
}

// GetColorSchemeOverride implements ConfigProvider.
func (a *ConfigAdapter) GetColorSchemeOverride() string {
	cfg := a.config()
	if cfg == nil {
		return ""
	}
	return cfg.Appearance.ColorSchemeOverride
}

// GetFallbackDark implements ConfigProvider.
func (a *ConfigAdapter) GetFallbackDark() bool {
	cfg := a.config()
	if cfg == nil {
		return true
	}
	return cfg.Appearance.FallbackDark
}

func (a *ConfigAdapter) config() *config.Config {
	if a == nil || a.cfg == nil {
		return nil
	}
	return a.cfg()
}

// RegisterDefaultDetectors registers every platform detector on r.
// Detectors that do not apply to the host report themselves unavailable.
func RegisterDefaultDetectors(r *Resolver) {
	r.RegisterDetector(NewEnvDetector())
	r.RegisterDetector(NewGsettingsDetector())
	r.RegisterDetector(NewDefaultsDetector())
	r.RegisterDetector(NewRegistryDetector())
}
