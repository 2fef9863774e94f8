package styles_test

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/application/port/mocks"
	"github.com/bnema/appearance/internal/cli/styles"
	"github.com/bnema/appearance/internal/domain/entity"
)

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

func strPtr(s string) *string { return &s }

type recorder struct {
	calls []string
}

func (r *recorder) record(v string) { r.calls = append(r.calls, v) }

func unquotedOpts() port.FontListOptions {
	return port.FontListOptions{DisableQuoting: true}
}

// start runs the picker's fetch and feeds the result back.
func start(t *testing.T, picker styles.FontPicker) styles.FontPicker {
	t.Helper()
	require.True(t, picker.Loading())
	msg := picker.LoadFonts()()
	picker, _ = picker.Update(msg)
	require.False(t, picker.Loading())
	return picker
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestFontPicker_LoadsFontsAndNotifiesOnce(t *testing.T) {
	ctx := testContext()
	lister := mocks.NewMockFontLister(t)
	lister.EXPECT().ListInstalledFonts(mock.Anything, unquotedOpts()).
		Return([]string{"Arial", "Menlo", "Consolas"}, nil).Once()

	rec := &recorder{}
	picker := styles.NewFontPicker(ctx, styles.NewTheme(entity.ThemeDark), lister, styles.FontPickerProps{
		SelectedFontFace:          strPtr("Arial"),
		OnSelectedFontFaceChanged: rec.record,
	})

	picker = start(t, picker)

	assert.Equal(t, []styles.FontOption{
		{Key: 0, Value: "Arial", Label: "Arial"},
		{Key: 1, Value: "Menlo", Label: "Menlo"},
		{Key: 2, Value: "Consolas", Label: "Consolas"},
	}, picker.Options())
	assert.Equal(t, []string{"Arial"}, rec.calls)
	assert.Equal(t, "Arial", picker.DisplayValue())
}

func TestFontPicker_FetchErrorLeavesListEmpty(t *testing.T) {
	ctx := testContext()
	lister := mocks.NewMockFontLister(t)
	lister.EXPECT().ListInstalledFonts(mock.Anything, unquotedOpts()).
		Return(nil, errors.New("fc-list missing")).Once()

	rec := &recorder{}
	picker := styles.NewFontPicker(ctx, styles.NewTheme(entity.ThemeLight), lister, styles.FontPickerProps{
		SelectedFontFace:          strPtr("Menlo"),
		OnSelectedFontFaceChanged: rec.record,
	})

	picker = start(t, picker)

	assert.Empty(t, picker.Options())
	assert.Empty(t, rec.calls)
	assert.Equal(t, "Menlo", picker.DisplayValue())
	assert.Contains(t, picker.View(), "No fonts available")

	picker, _ = picker.Update(key("enter"))
	assert.False(t, picker.Confirmed)
	assert.Empty(t, rec.calls)
}

func TestFontPicker_UnsetSelectionNotifiesFallback(t *testing.T) {
	ctx := testContext()
	lister := mocks.NewMockFontLister(t)
	lister.EXPECT().ListInstalledFonts(mock.Anything, unquotedOpts()).
		Return([]string{"Menlo"}, nil).Once()

	rec := &recorder{}
	picker := styles.NewFontPicker(ctx, styles.NewTheme(entity.ThemeDark), lister, styles.FontPickerProps{
		OnSelectedFontFaceChanged: rec.record,
	})

	assert.Equal(t, entity.PickerFontFaceFallback, picker.DisplayValue())

	picker = start(t, picker)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, `"Helvetica Neue", Helvetica, Arial, sans-serif`, rec.calls[0])
}

func TestFontPicker_SetPropsSyncsOnlyOnChange(t *testing.T) {
	ctx := testContext()
	lister := mocks.NewMockFontLister(t)

	picker := styles.NewFontPicker(ctx, styles.NewTheme(entity.ThemeDark), lister, styles.FontPickerProps{
		SelectedFontFace: strPtr("Arial"),
	})

	picker = picker.SetProps(styles.FontPickerProps{SelectedFontFace: strPtr("Menlo")})
	assert.Equal(t, "Menlo", picker.DisplayValue())

	picker = picker.SetProps(styles.FontPickerProps{SelectedFontFace: nil})
	assert.Equal(t, entity.PickerFontFaceFallback, picker.DisplayValue())

	picker = picker.SetProps(styles.FontPickerProps{SelectedFontFace: strPtr("Consolas")})
	assert.Equal(t, "Consolas", picker.DisplayValue())
}

func TestFontPicker_SetPropsSameValueKeepsUserChoice(t *testing.T) {
	ctx := testContext()
	lister := mocks.NewMockFontLister(t)
	lister.EXPECT().ListInstalledFonts(mock.Anything, unquotedOpts()).
		Return([]string{"Arial", "Menlo"}, nil).Once()

	props := styles.FontPickerProps{SelectedFontFace: strPtr("Arial")}
	picker := start(t, styles.NewFontPicker(ctx, styles.NewTheme(entity.ThemeDark), lister, props))

	picker, _ = picker.Update(key("down"))
	picker, _ = picker.Update(key("enter"))
	require.Equal(t, "Menlo", picker.DisplayValue())

	picker = picker.SetProps(styles.FontPickerProps{SelectedFontFace: strPtr("Arial")})
	assert.Equal(t, "Menlo", picker.DisplayValue())
}

func TestFontPicker_EnterReportsHighlightedFont(t *testing.T) {
	ctx := testContext()
	lister := mocks.NewMockFontLister(t)
	lister.EXPECT().ListInstalledFonts(mock.Anything, unquotedOpts()).
		Return([]string{"Arial", "Menlo", "Consolas"}, nil).Once()

	rec := &recorder{}
	picker := styles.NewFontPicker(ctx, styles.NewTheme(entity.ThemeDark), lister, styles.FontPickerProps{
		SelectedFontFace:          strPtr("Menlo"),
		OnSelectedFontFaceChanged: rec.record,
	})
	picker = start(t, picker)

	highlighted, ok := picker.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "Menlo", highlighted, "cursor starts on the selection")

	picker, _ = picker.Update(key("j"))
	picker, _ = picker.Update(key("enter"))

	assert.True(t, picker.Confirmed)
	assert.True(t, picker.Done())
	assert.Equal(t, []string{"Menlo", "Consolas"}, rec.calls)
	assert.Equal(t, "Consolas", picker.DisplayValue())
}

func TestFontPicker_CursorNavigation(t *testing.T) {
	ctx := testContext()
	lister := mocks.NewMockFontLister(t)
	lister.EXPECT().ListInstalledFonts(mock.Anything, unquotedOpts()).
		Return([]string{"A", "B", "C"}, nil).Once()

	picker := start(t, styles.NewFontPicker(ctx, styles.NewTheme(entity.ThemeDark), lister, styles.FontPickerProps{}))

	tests := []struct {
		key  string
		want string
	}{
		{"up", "A"},
		{"down", "B"},
		{"G", "C"},
		{"down", "C"},
		{"g", "A"},
		{"k", "A"},
	}
	for _, tt := range tests {
		picker, _ = picker.Update(key(tt.key))
		got, _ := picker.Highlighted()
		assert.Equal(t, tt.want, got, "after %q", tt.key)
	}
}

func TestFontPicker_Cancel(t *testing.T) {
	ctx := testContext()
	rec := &recorder{}
	picker := styles.NewFontPicker(ctx, styles.NewTheme(entity.ThemeDark), mocks.NewMockFontLister(t), styles.FontPickerProps{
		OnSelectedFontFaceChanged: rec.record,
	})

	picker, _ = picker.Update(key("esc"))

	assert.True(t, picker.Canceled)
	assert.True(t, picker.Done())
	assert.Empty(t, rec.calls)
}

func TestFontPicker_View(t *testing.T) {
	ctx := testContext()
	lister := mocks.NewMockFontLister(t)
	lister.EXPECT().ListInstalledFonts(mock.Anything, unquotedOpts()).
		Return([]string{"Arial", "Menlo"}, nil).Once()

	picker := styles.NewFontPicker(ctx, styles.NewTheme(entity.ThemeDark), lister, styles.FontPickerProps{
		SelectedFontFace: strPtr("Menlo"),
	})
	assert.Contains(t, picker.View(), "Loading fonts")

	picker = start(t, picker)
	view := picker.View()

	assert.Contains(t, view, "Font Face")
	assert.Contains(t, view, "Arial")
	assert.Contains(t, view, "Menlo")
}
