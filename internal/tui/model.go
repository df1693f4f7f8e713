package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hpungsan/capcode/internal/capacitor"
	"github.com/hpungsan/capcode/internal/errors"
	"github.com/hpungsan/capcode/internal/ops"
)

// Tab identifies one of the calculator's three conversion screens.
type Tab int

const (
	TabValue Tab = iota
	TabCode
	TabColors
)

var tabTitles = [...]string{"Value → Code", "Code → Value", "Colors → Value"}

func (t Tab) String() string { return tabTitles[t] }

// Model is the bubbletea calculator. A failed conversion leaves the last
// good result on screen and shows the error beneath it.
type Model struct {
	tab Tab

	magnitude textinput.Model
	units     []capacitor.Unit
	unitIndex int

	code textinput.Model

	bands     [capacitor.CodeLength]*int
	bandFocus int

	result   *ops.ConversionResult
	err      *errors.CapError
	quitting bool
}

// New creates a calculator with defaultUnit preselected.
// An unrecognized defaultUnit falls back to µF.
func New(defaultUnit string) Model {
	m := Model{units: capacitor.Units()}

	unit, err := capacitor.ParseUnit(defaultUnit)
	if err != nil {
		unit = capacitor.Microfarad
	}
	for i, u := range m.units {
		if u == unit {
			m.unitIndex = i
		}
	}

	m.magnitude = textinput.New()
	m.magnitude.Placeholder = "4.7"
	m.magnitude.CharLimit = 32
	m.magnitude.Cursor.Style = accentStyle
	m.magnitude.Focus()
	m.magnitude.PromptStyle = accentStyle

	m.code = textinput.New()
	m.code.Placeholder = "104"
	m.code.CharLimit = capacitor.CodeLength
	m.code.Cursor.Style = accentStyle

	return m
}

// Result returns the last successful conversion, or nil.
func (m Model) Result() *ops.ConversionResult { return m.result }

// Err returns the error from the last conversion attempt, or nil.
func (m Model) Err() *errors.CapError { return m.err }

// Tab returns the active tab.
func (m Model) Tab() Tab { return m.tab }

// Unit returns the unit selected on the value tab.
func (m Model) Unit() capacitor.Unit { return m.units[m.unitIndex] }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.switchTab(1)
	case "shift+tab":
		return m.switchTab(-1)
	case "enter":
		m.convert()
		return m, nil
	}

	switch m.tab {
	case TabValue:
		switch key.String() {
		case "up":
			m.unitIndex = (m.unitIndex + len(m.units) - 1) % len(m.units)
			return m, nil
		case "down":
			m.unitIndex = (m.unitIndex + 1) % len(m.units)
			return m, nil
		}
	case TabColors:
		return m.updateBands(key), nil
	}

	return m.updateInputs(msg)
}

func (m Model) switchTab(step int) (tea.Model, tea.Cmd) {
	n := len(tabTitles)
	m.tab = Tab((int(m.tab) + step + n) % n)

	m.magnitude.Blur()
	m.code.Blur()

	var cmd tea.Cmd
	switch m.tab {
	case TabValue:
		cmd = m.magnitude.Focus()
	case TabCode:
		cmd = m.code.Focus()
	}
	return m, cmd
}

// updateBands handles the digit selectors: ←/→ move between bands,
// ↑/↓ step the color, 0–9 pick a digit directly, backspace clears.
func (m Model) updateBands(key tea.KeyMsg) Model {
	s := key.String()
	switch {
	case s == "left":
		m.bandFocus = (m.bandFocus + len(m.bands) - 1) % len(m.bands)
	case s == "right":
		m.bandFocus = (m.bandFocus + 1) % len(m.bands)
	case s == "up":
		m.stepBand(1)
	case s == "down":
		m.stepBand(-1)
	case s == "backspace" || s == "delete":
		m.bands[m.bandFocus] = nil
	case len(s) == 1 && s[0] >= '0' && s[0] <= '9':
		d := int(s[0] - '0')
		m.bands[m.bandFocus] = &d
		if m.bandFocus < len(m.bands)-1 {
			m.bandFocus++
		}
	}
	return m
}

func (m *Model) stepBand(step int) {
	d := 0
	if cur := m.bands[m.bandFocus]; cur != nil {
		d = (*cur + step + 10) % 10
	}
	m.bands[m.bandFocus] = &d
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds [2]tea.Cmd
	m.magnitude, cmds[0] = m.magnitude.Update(msg)
	m.code, cmds[1] = m.code.Update(msg)

	// The code field only ever holds digits
	if stripped := capacitor.StripNonDigits(m.code.Value()); stripped != m.code.Value() {
		m.code.SetValue(stripped)
	}
	return m, tea.Batch(cmds[:]...)
}

// convert runs the active tab's conversion.
func (m *Model) convert() {
	var (
		result *ops.ConversionResult
		err    error
	)
	switch m.tab {
	case TabValue:
		result, err = ops.FromValue(ops.FromValueInput{
			Magnitude: m.magnitude.Value(),
			Unit:      m.Unit().Token(),
		})
	case TabCode:
		result, err = ops.FromCode(ops.FromCodeInput{Code: m.code.Value()})
	case TabColors:
		result, err = ops.FromColors(ops.FromColorsInput{Digits: m.bands})
	}

	if err != nil {
		m.err = errors.As(err)
		return
	}
	m.result = result
	m.err = nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Capacitor code calculator"))
	b.WriteString("\n\n")

	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if Tab(i) == m.tab {
			tabs[i] = activeTab.Render(title)
		} else {
			tabs[i] = inactiveTab.Render(title)
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	switch m.tab {
	case TabValue:
		fmt.Fprintf(&b, " %s\n %s  %s\n", mutedStyle.Render("Capacitance:"), m.magnitude.View(), m.unitView())
	case TabCode:
		fmt.Fprintf(&b, " %s\n %s\n", mutedStyle.Render("3-digit code:"), m.code.View())
	case TabColors:
		fmt.Fprintf(&b, " %s\n %s\n", mutedStyle.Render("Bands:"), m.bandsView())
	}

	b.WriteString("\n")
	if m.result != nil {
		b.WriteString(RenderResult(m.result))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("✗ " + m.err.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) unitView() string {
	parts := make([]string, len(m.units))
	for i, u := range m.units {
		if i == m.unitIndex {
			parts[i] = accentStyle.Render("[" + u.Symbol() + "]")
		} else {
			parts[i] = mutedStyle.Render(u.Symbol())
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) bandsView() string {
	parts := make([]string, len(m.bands))
	for i, d := range m.bands {
		var cell string
		if d == nil {
			cell = bandBase.Render("·")
		} else {
			cell = RenderBand(capacitor.ColorOf(byte('0' + *d)))
		}
		if i == m.bandFocus {
			cell = accentStyle.Render("›") + cell
		} else {
			cell = " " + cell
		}
		parts[i] = cell
	}
	return strings.Join(parts, " ")
}

func (m Model) helpLine() string {
	switch m.tab {
	case TabValue:
		return " tab: next screen • ↑/↓: unit • enter: convert • esc: quit"
	case TabColors:
		return " tab: next screen • ←/→: band • ↑/↓ or 0-9: color • enter: convert • esc: quit"
	default:
		return " tab: next screen • enter: convert • esc: quit"
	}
}

// Run starts the interactive calculator.
func Run(defaultUnit string) error {
	_, err := tea.NewProgram(New(defaultUnit)).Run()
	return err
}
