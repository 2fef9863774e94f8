// Package colorscheme resolves the OS dark-mode preference from a
// priority-ordered chain of platform detectors.
package colorscheme

import (
	"sort"
	"strings"
	"sync"

	"github.com/bnema/appearance/internal/application/port"
)

const (
	// sourceFallback indicates no detector provided the preference.
	sourceFallback = "fallback"
	// sourceConfig indicates the preference came from user config.
	sourceConfig = "config"
)

// ConfigProvider provides access to the color scheme configuration.
type ConfigProvider interface {
	// GetColorSchemeOverride returns the configured override.
	// Expected values: "default", "prefer-dark", "prefer-light", "dark", "light"
	GetColorSchemeOverride() string

	// GetFallbackDark reports the preference used when no detector answers.
	GetFallbackDark() bool
}

type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Resolver implements port.ColorSchemeResolver.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	callbacks []*callbackWrapper
}

// NewResolver creates a new color scheme resolver.
// A nil config disables overrides and falls back to dark.
func NewResolver(config ConfigProvider) *Resolver {
	r := &Resolver{
		config:    config,
		detectors: make([]port.ColorSchemeDetector, 0),
	}
	r.current = r.fallback()
	return r
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveInternal()
}

// Current returns the preference recorded by the last Refresh.
func (r *Resolver) Current() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// resolveInternal performs the resolution. Caller must hold at least a read lock.
func (r *Resolver) resolveInternal() port.ColorSchemePreference {
	if r.config != nil {
		switch strings.ToLower(strings.TrimSpace(r.config.GetColorSchemeOverride())) {
		case "prefer-dark", "dark":
			return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
		case "prefer-light", "light":
			return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
		}
	}

	for _, detector := range r.prioritized() {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return r.fallback()
}

func (r *Resolver) fallback() port.ColorSchemePreference {
	prefersDark := true
	if r.config != nil {
		prefersDark = r.config.GetFallbackDark()
	}
	return port.ColorSchemePreference{PrefersDark: prefersDark, Source: sourceFallback}
}

// prioritized returns the detectors highest priority first, registration
// order breaking ties. Caller must hold at least a read lock.
func (r *Resolver) prioritized() []port.ColorSchemeDetector {
	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return sorted
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Detectors returns the registered detector names in priority order.
func (r *Resolver) Detectors() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := r.prioritized()
	names := make([]string, 0, len(sorted))
	for _, d := range sorted {
		names = append(names, d.Name())
	}
	return names
}

// Refresh implements port.ColorSchemeResolver.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()
	newPref := r.resolveInternal()
	changed := newPref.PrefersDark != r.current.PrefersDark
	r.current = newPref

	var callbacks []*callbackWrapper
	if changed {
		callbacks = make([]*callbackWrapper, len(r.callbacks))
		copy(callbacks, r.callbacks)
	}
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(newPref)
	}
	return newPref
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}
