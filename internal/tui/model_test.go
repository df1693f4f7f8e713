package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpungsan/capcode/internal/capacitor"
	"github.com/hpungsan/capcode/internal/errors"
)

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyBack     = tea.KeyMsg{Type: tea.KeyBackspace}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
)

// send feeds messages through Update and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, keyRune(r))
	}
	return msgs
}

func TestNew_DefaultUnit(t *testing.T) {
	assert.Equal(t, capacitor.Microfarad, New("uF").Unit())
	assert.Equal(t, capacitor.Nanofarad, New("nF").Unit())
	assert.Equal(t, capacitor.Microfarad, New("bogus").Unit())
	assert.Equal(t, TabValue, New("uF").Tab())
}

func TestModel_ValueTab(t *testing.T) {
	m := New("nF")
	m = send(t, m, typeText("4.7")...)
	m = send(t, m, keyEnter)

	require.Nil(t, m.Err())
	require.NotNil(t, m.Result())
	assert.Equal(t, "472", m.Result().Code)
	assert.Equal(t, "4.7 nF", m.Result().Capacitance.Display)
}

func TestModel_UnitCycling(t *testing.T) {
	m := New("uF")
	units := capacitor.Units()

	m = send(t, m, keyDown)
	assert.Equal(t, units[0], m.Unit(), "down wraps past the last unit")

	m = send(t, m, keyUp)
	assert.Equal(t, capacitor.Microfarad, m.Unit())
}

func TestModel_TabSwitching(t *testing.T) {
	m := New("uF")

	m = send(t, m, keyTab)
	assert.Equal(t, TabCode, m.Tab())
	m = send(t, m, keyTab)
	assert.Equal(t, TabColors, m.Tab())
	m = send(t, m, keyTab)
	assert.Equal(t, TabValue, m.Tab())
	m = send(t, m, keyShiftTab)
	assert.Equal(t, TabColors, m.Tab())
}

func TestModel_CodeTab_StripsNonDigits(t *testing.T) {
	m := send(t, New("uF"), keyTab)
	m = send(t, m, typeText("1a0-4")...)
	m = send(t, m, keyEnter)

	require.Nil(t, m.Err())
	require.NotNil(t, m.Result())
	assert.Equal(t, "104", m.Result().Code)
	assert.Equal(t, "100 nF", m.Result().Capacitance.Display)
}

func TestModel_KeepsPriorResultOnError(t *testing.T) {
	m := send(t, New("uF"), keyTab)
	m = send(t, m, typeText("106")...)
	m = send(t, m, keyEnter)
	require.NotNil(t, m.Result())

	// Shorten the code to two digits and convert again
	m = send(t, m, keyBack, keyEnter)

	require.NotNil(t, m.Err())
	assert.Equal(t, errors.ErrMalformedCode, m.Err().Code)
	require.NotNil(t, m.Result(), "prior result should be kept")
	assert.Equal(t, "106", m.Result().Code)

	// A later success clears the error
	m = send(t, m, keyRune('5'), keyEnter)
	assert.Nil(t, m.Err())
	assert.Equal(t, "105", m.Result().Code)
}

func TestModel_ColorsTab_Digits(t *testing.T) {
	m := send(t, New("uF"), keyTab, keyTab)
	m = send(t, m, keyRune('1'), keyRune('0'), keyRune('6'), keyEnter)

	require.Nil(t, m.Err())
	require.NotNil(t, m.Result())
	assert.Equal(t, "106", m.Result().Code)
	assert.Equal(t, "colors", string(m.Result().Direction))
}

func TestModel_ColorsTab_Selectors(t *testing.T) {
	m := send(t, New("uF"), keyShiftTab)
	require.Equal(t, TabColors, m.Tab())

	// band 1: unset → 0 → 1 (Brown)
	m = send(t, m, keyUp, keyUp)
	// band 2: unset → 0 (Black)
	m = send(t, m, keyRight, keyUp)
	// band 3: unset → 0 → 9 → 8 → 7 → 6 (Blue)
	m = send(t, m, keyRight, keyDown, keyDown, keyDown, keyDown, keyDown)
	m = send(t, m, keyEnter)

	require.Nil(t, m.Err())
	require.NotNil(t, m.Result())
	assert.Equal(t, "106", m.Result().Code)

	m = send(t, m, keyLeft, keyLeft, keyLeft)
	assert.Equal(t, 2, m.bandFocus, "left wraps from the first band")
}

func TestModel_ColorsTab_MissingBand(t *testing.T) {
	m := send(t, New("uF"), keyShiftTab)
	m = send(t, m, keyRune('4'), keyRune('7'), keyBack, keyEnter)

	require.NotNil(t, m.Err())
	assert.Equal(t, errors.ErrMissingInput, m.Err().Code)
	assert.Nil(t, m.Result())
}

func TestModel_Quit(t *testing.T) {
	next, cmd := New("uF").Update(keyEsc)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModel_View(t *testing.T) {
	m := New("nF")
	view := m.View()
	assert.Contains(t, view, "Capacitor code calculator")
	assert.Contains(t, view, "Value → Code")
	assert.Contains(t, view, "[nF]")

	m = send(t, m, typeText("100")...)
	m = send(t, m, keyEnter)
	view = m.View()
	assert.Contains(t, view, "100 nF")
	assert.Contains(t, view, "104")
	assert.Contains(t, view, "Brown")
	assert.Contains(t, view, "Yellow")

	m = send(t, m, keyTab, keyTab)
	assert.Contains(t, m.View(), "0-9: color")
}
