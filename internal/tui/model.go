// Package tui is the interactive lookup screen started by "ouilookup tui".
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaco/ouilookup/internal/app"
	"github.com/jaco/ouilookup/internal/mac"
	"github.com/jaco/ouilookup/internal/vendor"
)

// maxHistory bounds the list of previous lookups shown under the result.
const maxHistory = 8

// Lookuper resolves a raw MAC address.
type Lookuper interface {
	Lookup(raw string) (app.Outcome, error)
}

// LookupMsg carries the result of a lookup back into Update.
type LookupMsg struct {
	Raw     string
	Outcome app.Outcome
	Err     error
}

// Model is the lookup screen.
type Model struct {
	input    textinput.Model
	lookup   Lookuper
	keys     Keys
	help     help.Model
	last     *LookupMsg
	history  []LookupMsg
	quitting bool
}

// NewModel creates the lookup screen backed by l.
func NewModel(l Lookuper) Model {
	ti := textinput.New()
	ti.Placeholder = "aa:bb:cc:dd:ee:ff"
	ti.CharLimit = mac.MaxLength
	ti.Width = mac.MaxLength + 2
	ti.Focus()

	return Model{
		input:  ti,
		lookup: l,
		keys:   DefaultKeys,
		help:   help.New(),
	}
}

// Init initializes the text input blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and lookup results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			raw := m.input.Value()
			if strings.TrimSpace(raw) == "" {
				return m, nil
			}
			return m, m.lookupCmd(raw)

		case key.Matches(msg, m.keys.Clear):
			m.history = nil
			m.last = nil
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case LookupMsg:
		m.last = &msg
		m.history = append([]LookupMsg{msg}, m.history...)
		if len(m.history) > maxHistory {
			m.history = m.history[:maxHistory]
		}
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) lookupCmd(raw string) tea.Cmd {
	l := m.lookup
	return func() tea.Msg {
		out, err := l.Lookup(raw)
		return LookupMsg{Raw: raw, Outcome: out, Err: err}
	}
}

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("OUI lookup"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.last != nil {
		b.WriteString(PanelStyle.Render(renderResult(*m.last)))
		b.WriteString("\n")
	}

	if len(m.history) > 1 {
		b.WriteString(DimStyle.Render("Previous"))
		b.WriteString("\n")
		for _, h := range m.history[1:] {
			b.WriteString(DimStyle.Render(fmt.Sprintf("  %-17s  %s", h.Raw, summary(h))))
			b.WriteString("\n")
		}
	}

	b.WriteString(FooterStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func renderResult(r LookupMsg) string {
	if r.Err != nil {
		return renderRows([][2]string{
			{"MAC", r.Raw},
			{"Error", ErrorStyle.Render(r.Err.Error())},
		})
	}

	out := r.Outcome
	if !out.Found {
		return renderRows([][2]string{
			{"MAC", r.Raw},
			{"OUI", out.OUI},
			{"Vendor", WarningStyle.Render(app.NoMatch)},
		})
	}

	return renderRows([][2]string{
		{"MAC", r.Raw},
		{"OUI", out.OUI},
		{"Vendor", SuccessStyle.Render(out.Vendor)},
		{"Source", string(out.Source)},
		{"Class", vendor.Classify(out.Vendor).String()},
	})
}

func summary(r LookupMsg) string {
	if r.Err != nil {
		return "error: " + r.Err.Error()
	}
	return r.Outcome.String()
}

// Run starts the lookup screen on the alternate screen buffer.
func Run(l Lookuper) error {
	p := tea.NewProgram(NewModel(l), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
