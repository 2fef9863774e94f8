// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/domain/entity"
	"github.com/bnema/appearance/internal/logging"
)

// ManageAppearanceUseCase is the single source of truth for the user's
// theme and font-face preferences.
type ManageAppearanceUseCase struct {
	store  port.PreferenceStore
	os     port.OSDetector
	bridge port.NativeThemeBridge
}

// NewManageAppearanceUseCase creates a new appearance use case.
func NewManageAppearanceUseCase(
	store port.PreferenceStore,
	osDetector port.OSDetector,
	bridge port.NativeThemeBridge,
) *ManageAppearanceUseCase {
	return &ManageAppearanceUseCase{
		store:  store,
		os:     osDetector,
		bridge: bridge,
	}
}

// ResolveThemeName maps a theme to the name used for persistence and the native bridge.
func (*ManageAppearanceUseCase) ResolveThemeName(theme entity.Theme) entity.ThemeSource {
	return entity.ResolveThemeName(theme)
}

// GetPersistedThemeName returns the user's theme preference, running the
// legacy auto-switch migration first.
func (uc *ManageAppearanceUseCase) GetPersistedThemeName(ctx context.Context) entity.Theme {
	if outcome, ok := uc.MigrateLegacyAutoSwitch(ctx); ok && outcome == entity.ThemeSourceSystem {
		return entity.ThemeSystem
	}

	return uc.GetApplicationThemeSetting(ctx)
}

// GetApplicationThemeSetting reads the stored theme without migrating.
// Returns ThemeSystem if the setting is absent, unreadable, or not light/dark.
func (uc *ManageAppearanceUseCase) GetApplicationThemeSetting(ctx context.Context) entity.Theme {
	log := logging.FromContext(ctx)

	value, ok, err := uc.store.Get(ctx, entity.PreferenceKeyTheme)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read theme setting, following system")
		return entity.ThemeSystem
	}
	if !ok {
		return entity.ThemeSystem
	}

	theme := entity.ParseThemeSetting(value)
	if string(theme) != value {
		log.Debug().Str("value", value).Msg("unrecognized theme setting, following system")
	}
	return theme
}

// MigrateLegacyAutoSwitch converts the legacy auto-switch flag into a
// system theme setting. The legacy key is removed on every call.
// Returns the migration outcome and whether the flag was set.
func (uc *ManageAppearanceUseCase) MigrateLegacyAutoSwitch(ctx context.Context) (entity.ThemeSource, bool) {
	log := logging.FromContext(ctx)

	value, present, err := uc.store.Get(ctx, entity.PreferenceKeyLegacyAutoTheme)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read legacy auto-switch flag")
		present = false
	}

	plan := entity.PlanLegacyMigration(value, present)

	if plan.RemoveLegacyKey {
		if err := uc.store.Remove(ctx, entity.PreferenceKeyLegacyAutoTheme); err != nil {
			log.Warn().Err(err).Msg("failed to remove legacy auto-switch flag")
		}
	}

	if plan.PersistTheme == nil {
		return "", false
	}

	if err := uc.SetPersistedTheme(ctx, *plan.PersistTheme); err != nil {
		log.Warn().Err(err).Msg("failed to persist migrated theme")
	}
	log.Info().Str("theme", string(*plan.PersistTheme)).Msg("migrated legacy auto-switch setting")

	return plan.Outcome, true
}

// SetPersistedTheme stores the theme and tells the host to follow it.
func (uc *ManageAppearanceUseCase) SetPersistedTheme(ctx context.Context, theme entity.Theme) error {
	log := logging.FromContext(ctx)
	source := entity.ResolveThemeName(theme)

	if err := uc.store.Set(ctx, entity.PreferenceKeyTheme, string(theme)); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}

	uc.bridge.SetNativeThemeSource(ctx, source)
	log.Debug().Str("theme", string(theme)).Str("source", string(source)).Msg("theme persisted")
	return nil
}

// SetPersistedFontFace stores the font face and tells the host to apply it.
func (uc *ManageAppearanceUseCase) SetPersistedFontFace(ctx context.Context, fontFace string) error {
	log := logging.FromContext(ctx)

	if err := uc.store.Set(ctx, entity.PreferenceKeyFontFace, fontFace); err != nil {
		return fmt.Errorf("failed to persist font face: %w", err)
	}

	uc.bridge.SetFontFaceSource(ctx, fontFace)
	log.Debug().Str("font_face", fontFace).Msg("font face persisted")
	return nil
}

// GetPersistedFontFace returns the stored font face, or the default stack.
func (uc *ManageAppearanceUseCase) GetPersistedFontFace(ctx context.Context) string {
	value, ok, err := uc.store.Get(ctx, entity.PreferenceKeyFontFace)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read font face, using default")
		return entity.PersistedFontFaceFallback
	}
	if !ok {
		return entity.PersistedFontFaceFallback
	}
	return value
}

// GetCurrentlyAppliedTheme asks the host whether dark colors are in use.
// Never returns ThemeSystem.
func (uc *ManageAppearanceUseCase) GetCurrentlyAppliedTheme(ctx context.Context) entity.ApplicableTheme {
	return entity.ApplicableFromDark(uc.bridge.ShouldUseDarkColors(ctx))
}

// SupportsSystemThemeChanges reports whether the OS can signal appearance
// changes. Hosts other than macOS and Windows are always allowed.
func (uc *ManageAppearanceUseCase) SupportsSystemThemeChanges() bool {
	switch {
	case uc.os.IsMacOS():
		return uc.os.IsMacOSMojaveOrLater()
	case uc.os.IsWindows():
		return uc.os.IsWindows10Build17666OrLater()
	default:
		return true
	}
}
