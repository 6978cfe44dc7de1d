package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/wlcinput/input"
	"github.com/bnema/wlcinput/internal/keysym"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PollMsg triggers one sample of the pointer and keyboard
type PollMsg time.Time

type watchKeyMap struct {
	Pause key.Binding
	Clear key.Binding
	Quit  key.Binding
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Clear, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Pause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
		Clear: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear history")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// modifierKeysyms maps held modifier keys to the modifier they engage
var modifierKeysyms = map[uint32]input.Modifiers{
	keysym.ShiftL:         input.ModShift,
	keysym.ShiftR:         input.ModShift,
	keysym.ControlL:       input.ModCtrl,
	keysym.ControlR:       input.ModCtrl,
	keysym.AltL:           input.ModAlt,
	keysym.AltR:           input.ModAlt,
	keysym.MetaL:          input.ModAlt,
	keysym.MetaR:          input.ModAlt,
	keysym.SuperL:         input.ModLogo,
	keysym.SuperR:         input.ModLogo,
	keysym.ISOLevel3Shift: input.ModAltGr,
}

// maxHistory bounds the list of recently typed characters
const maxHistory = 40

// WatchModel polls the pointer and keyboard on a ticker and renders the
// cursor position, held keys and what they translate to
type WatchModel struct {
	pointer  *input.Pointer
	keyboard *input.Keyboard
	base     input.KeyModifiers
	interval time.Duration

	keys    watchKeyMap
	help    help.Model
	spinner spinner.Model

	paused   bool
	polls    int
	position input.Point
	held     input.KeySnapshot
	mods     input.Modifiers
	history  []rune
	width    int
}

// NewWatchModel creates a watch model. base is added to the modifiers
// derived from held keys when translating.
func NewWatchModel(pointer *input.Pointer, keyboard *input.Keyboard, base input.KeyModifiers, interval time.Duration) *WatchModel {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorSecondary)

	return &WatchModel{
		pointer:  pointer,
		keyboard: keyboard,
		base:     base,
		interval: interval,
		keys:     newWatchKeyMap(),
		help:     help.New(),
		spinner:  s,
		held:     input.KeySnapshot{},
		width:    80,
	}
}

func (m *WatchModel) poll() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}

// Init implements tea.Model
func (m *WatchModel) Init() tea.Cmd {
	m.Sample()
	return tea.Batch(m.spinner.Tick, m.poll())
}

// Update implements tea.Model
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Clear):
			m.history = m.history[:0]
		}

	case PollMsg:
		if !m.paused {
			m.Sample()
		}
		return m, m.poll()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

// Sample reads the pointer and keyboard once
func (m *WatchModel) Sample() {
	m.polls++
	m.position = m.pointer.Position()

	previous := m.held
	m.held = m.keyboard.CurrentKeys()

	m.mods = 0
	for _, k := range m.held {
		ks := m.keyboard.KeysymForKey(k, input.KeyModifiers{})
		m.mods = m.mods.Union(modifierKeysyms[ks.Code()])
	}

	// Record characters for keys that went down since the last sample
	for _, k := range m.held {
		if previous.Contains(k) {
			continue
		}
		if r, ok := m.keyboard.RuneForKey(k, m.Modifiers()); ok && r >= ' ' {
			m.history = append(m.history, r)
		}
	}
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// Modifiers returns the modifiers used for translation: the configured
// base plus those engaged by held keys
func (m *WatchModel) Modifiers() input.KeyModifiers {
	return m.base.Union(input.NewKeyModifiers(m.mods, 0))
}

// Position returns the last sampled pointer position
func (m *WatchModel) Position() input.Point {
	return m.position
}

// Held returns the keys held at the last sample
func (m *WatchModel) Held() input.KeySnapshot {
	return m.held
}

// History returns the recently typed characters
func (m *WatchModel) History() string {
	return string(m.history)
}

// Paused reports whether polling is paused
func (m *WatchModel) Paused() bool {
	return m.paused
}

// View implements tea.Model
func (m *WatchModel) View() string {
	var b strings.Builder

	status := m.spinner.View() + " live"
	if m.paused {
		status = WarningStyle.Render("paused")
	}
	b.WriteString(TitleStyle.Render("wlcinput watch") + "  " + status + "\n\n")

	b.WriteString(FormatField(IconPointer+" pointer", FormatPoint(m.position)) + "\n")
	b.WriteString(FormatField("mods", m.Modifiers().Mods.String()) + "\n")
	b.WriteString(FormatField("leds", m.Modifiers().Leds.String()) + "\n")

	b.WriteString(FormatField(IconKey+" keys", "") + "\n")
	if m.held.Len() == 0 {
		b.WriteString("  " + SubtleStyle.Render("no keys held") + "\n")
	}
	mods := m.Modifiers()
	for _, k := range m.held {
		ks := m.keyboard.KeysymForKey(k, mods)
		line := fmt.Sprintf("  %s %s", FormatKeyCap(k, ks), FormatKeysym(ks))
		if r, ok := m.keyboard.RuneForKey(k, mods); ok && r >= ' ' {
			line += " " + InfoStyle.Render(fmt.Sprintf("%q", r))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + FormatField("typed", m.History()) + "\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("%d samples every %s", m.polls, m.interval)) + "\n\n")
	b.WriteString(m.help.View(m.keys))

	return BoxStyle.Render(b.String())
}
