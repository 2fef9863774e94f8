package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/cli/styles"
)

// FontFaceSaver persists the font face chosen in the picker.
type FontFaceSaver interface {
	SetPersistedFontFace(ctx context.Context, fontFace string) error
}

// FontPickModel wraps styles.FontPicker for standalone use and persists
// the confirmed font face.
type FontPickModel struct {
	picker styles.FontPicker
	saver  FontFaceSaver
	ctx    context.Context

	saving bool
	saved  bool
	err    error

	// shared with the picker callback, which may run on a copy of the model
	latest *string
}

// fontSavedMsg is sent when persistence is done.
type fontSavedMsg struct {
	err error
}

// NewFontPickModel creates a picker starting at current (nil when unset).
func NewFontPickModel(
	ctx context.Context,
	theme *styles.Theme,
	lister port.FontLister,
	saver FontFaceSaver,
	current *string,
) FontPickModel {
	latest := new(string)
	if current != nil {
		*latest = *current
	}

	picker := styles.NewFontPicker(ctx, theme, lister, styles.FontPickerProps{
		SelectedFontFace: current,
		OnSelectedFontFaceChanged: func(fontFace string) {
			*latest = fontFace
		},
	})

	return FontPickModel{
		picker: picker,
		saver:  saver,
		ctx:    ctx,
		latest: latest,
	}
}

// Init implements tea.Model.
func (m FontPickModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements tea.Model.
func (m FontPickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fontSavedMsg:
		m.saving = false
		m.err = msg.err
		m.saved = msg.err == nil
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.picker.Canceled = true
			return m, tea.Quit
		}
	}

	if m.saving {
		return m, nil
	}

	picker, cmd := m.picker.Update(msg)
	m.picker = picker

	if m.picker.Done() {
		if m.picker.Canceled {
			return m, tea.Quit
		}
		m.saving = true
		return m, m.save(*m.latest)
	}

	return m, cmd
}

func (m FontPickModel) save(fontFace string) tea.Cmd {
	ctx, saver := m.ctx, m.saver
	return func() tea.Msg {
		return fontSavedMsg{err: saver.SetPersistedFontFace(ctx, fontFace)}
	}
}

// View implements tea.Model.
func (m FontPickModel) View() string {
	if m.saved || m.err != nil || m.picker.Canceled {
		return ""
	}
	return m.picker.View()
}

// Selected returns the font face last reported by the picker.
func (m FontPickModel) Selected() string {
	return *m.latest
}

// Saved reports whether the chosen font face was persisted.
func (m FontPickModel) Saved() bool {
	return m.saved
}

// Canceled reports whether the user left without choosing.
func (m FontPickModel) Canceled() bool {
	return m.picker.Canceled
}

// Err returns the persistence error, if any.
func (m FontPickModel) Err() error {
	return m.err
}

// Ensure interface compliance.
var _ tea.Model = (*FontPickModel)(nil)
