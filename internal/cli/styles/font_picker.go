package styles

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/domain/entity"
	"github.com/bnema/appearance/internal/logging"
)

const (
	fontPickerLabel       = "Font Face"
	fontPickerVisibleRows = 10
)

// FontPickerProps is the owner-supplied input of the picker.
type FontPickerProps struct {
	// SelectedFontFace is the owner's current font face, nil when unset.
	SelectedFontFace *string

	// OnSelectedFontFaceChanged receives every selection reported by the
	// picker. The picker never persists anything itself.
	OnSelectedFontFaceChanged func(string)
}

// FontOption is one entry of the picker list.
type FontOption struct {
	Key   int
	Value string
	Label string
}

// FontPickerKeyMap defines keybindings for the font picker.
type FontPickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Cancel key.Binding
}

// DefaultFontPickerKeyMap returns default keybindings.
func DefaultFontPickerKeyMap() FontPickerKeyMap {
	return FontPickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
	}
}

// fontsLoadedMsg carries the result of the one-shot font fetch.
type fontsLoadedMsg struct {
	fonts []string
	err   error
}

// FontPicker is a single-select list of installed font families.
// The font list is fetched once, when the picker starts.
type FontPicker struct {
	Confirmed bool
	Canceled  bool

	ctx      context.Context
	theme    *Theme
	lister   port.FontLister
	props    FontPickerProps
	keys     FontPickerKeyMap
	spinner  spinner.Model
	selected *string
	fonts    []string
	cursor   int
	loading  bool
	loadErr  error
}

// NewFontPicker creates a picker adopting props.SelectedFontFace as its
// initial selection.
func NewFontPicker(ctx context.Context, theme *Theme, lister port.FontLister, props FontPickerProps) FontPicker {
	return FontPicker{
		ctx:      ctx,
		theme:    theme,
		lister:   lister,
		props:    props,
		keys:     DefaultFontPickerKeyMap(),
		spinner:  NewDefaultSpinner(theme),
		selected: copyString(props.SelectedFontFace),
		loading:  true,
	}
}

// Init starts the one-shot font fetch and the loading spinner.
func (m FontPicker) Init() tea.Cmd {
	return tea.Batch(m.LoadFonts(), m.spinner.Tick)
}

// LoadFonts returns the command that fetches installed fonts unquoted.
func (m FontPicker) LoadFonts() tea.Cmd {
	ctx, lister := m.ctx, m.lister
	return func() tea.Msg {
		if lister == nil {
			return fontsLoadedMsg{err: fmt.Errorf("no font lister configured")}
		}
		fonts, err := lister.ListInstalledFonts(ctx, port.FontListOptions{DisableQuoting: true})
		return fontsLoadedMsg{fonts: fonts, err: err}
	}
}

// Update handles picker messages. The owner embeds the returned picker.
func (m FontPicker) Update(msg tea.Msg) (FontPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case fontsLoadedMsg:
		return m.handleFontsLoaded(msg), nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
		case key.Matches(msg, m.keys.Bottom):
			if len(m.fonts) > 0 {
				m.cursor = len(m.fonts) - 1
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.fonts) == 0 {
				return m, nil
			}
			m = m.choose(m.fonts[m.cursor])
			m.Confirmed = true
		case key.Matches(msg, m.keys.Cancel):
			m.Canceled = true
		}
	}
	return m, nil
}

func (m FontPicker) handleFontsLoaded(msg fontsLoadedMsg) FontPicker {
	m.loading = false

	if msg.err != nil {
		logging.FromContext(m.ctx).Error().Err(msg.err).Msg("failed to list installed fonts")
		m.loadErr = msg.err
		m.fonts = nil
		return m
	}

	m.fonts = msg.fonts
	display := m.DisplayValue()
	m.cursorTo(display)
	m.notify(display)
	return m
}

// SetProps applies new owner props. The selection follows
// SelectedFontFace only when it differs from the previous props.
func (m FontPicker) SetProps(props FontPickerProps) FontPicker {
	prev := m.props
	m.props = props
	if !sameString(prev.SelectedFontFace, props.SelectedFontFace) {
		m.selected = copyString(props.SelectedFontFace)
		m.cursorTo(m.DisplayValue())
	}
	return m
}

// choose records a user selection and reports it to the owner.
func (m FontPicker) choose(fontFace string) FontPicker {
	m.selected = &fontFace
	m.notify(fontFace)
	return m
}

func (m FontPicker) notify(fontFace string) {
	if m.props.OnSelectedFontFaceChanged != nil {
		m.props.OnSelectedFontFaceChanged(fontFace)
	}
}

// DisplayValue returns the selection, or the default stack when unset.
func (m FontPicker) DisplayValue() string {
	if m.selected == nil {
		return entity.PickerFontFaceFallback
	}
	return *m.selected
}

// Options returns one option per fetched font, in fetch order.
func (m FontPicker) Options() []FontOption {
	options := make([]FontOption, 0, len(m.fonts))
	for i, name := range m.fonts {
		options = append(options, FontOption{Key: i, Value: name, Label: name})
	}
	return options
}

// Highlighted returns the font under the cursor.
func (m FontPicker) Highlighted() (string, bool) {
	if len(m.fonts) == 0 {
		return "", false
	}
	return m.fonts[m.cursor], true
}

// Loading reports whether the font fetch is still pending.
func (m FontPicker) Loading() bool {
	return m.loading
}

// Done reports whether the user confirmed or canceled.
func (m FontPicker) Done() bool {
	return m.Confirmed || m.Canceled
}

func (m *FontPicker) moveCursor(delta int) {
	if len(m.fonts) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.fonts) {
		m.cursor = len(m.fonts) - 1
	}
}

func (m *FontPicker) cursorTo(value string) {
	for i, name := range m.fonts {
		if name == value {
			m.cursor = i
			return
		}
	}
}

// View renders the label, current value and option list.
func (m FontPicker) View() string {
	t := m.theme
	var sb strings.Builder

	sb.WriteString(t.Title.Render(fontPickerLabel))
	sb.WriteString("  ")
	sb.WriteString(t.Highlight.Render(m.DisplayValue()))
	sb.WriteString("\n\n")

	switch {
	case m.loading:
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " ", t.Subtle.Render("Loading fonts...")))
		sb.WriteString("\n")
	case len(m.fonts) == 0:
		sb.WriteString(t.Subtle.Render("  No fonts available"))
		sb.WriteString("\n")
	default:
		start, end := m.visibleRange()
		for i := start; i < end; i++ {
			sb.WriteString(m.renderRow(i))
			sb.WriteString("\n")
		}
		if len(m.fonts) > end-start {
			sb.WriteString(t.Subtle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.fonts))))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderHelp())
	return t.Box.Render(sb.String())
}

func (m FontPicker) renderRow(i int) string {
	name := m.fonts[i]
	marker := " "
	if m.selected != nil && *m.selected == name {
		marker = "*"
	}
	if i == m.cursor {
		return m.theme.ListItemSelected.Render(cursorSelected + marker + " " + name)
	}
	return m.theme.ListItem.Render(cursorEmpty + marker + " " + name)
}

func (m FontPicker) visibleRange() (start, end int) {
	n := len(m.fonts)
	if n <= fontPickerVisibleRows {
		return 0, n
	}
	start = m.cursor - fontPickerVisibleRows/2
	if start < 0 {
		start = 0
	}
	end = start + fontPickerVisibleRows
	if end > n {
		end = n
		start = end - fontPickerVisibleRows
	}
	return start, end
}

func (m FontPicker) renderHelp() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Cancel}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.theme.HelpKey.Render(h.Key)+" "+m.theme.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, m.theme.Subtle.Render(" • "))
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
