package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(t *testing.T, m overwriteModel, s string) overwriteModel {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(overwriteModel)
	}
	return m
}

func pressEnter(t *testing.T, m overwriteModel) overwriteModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(overwriteModel)
}

func TestOverwriteModelConfirm(t *testing.T) {
	m := newOverwriteModel("/tmp/x", true)
	m = typeString(t, m, "y")
	m = pressEnter(t, m)

	if !m.quitting || !m.confirmed || m.cancelled {
		t.Errorf("after y+enter: quitting=%v confirmed=%v cancelled=%v", m.quitting, m.confirmed, m.cancelled)
	}
}

func TestOverwriteModelDecline(t *testing.T) {
	m := newOverwriteModel("/tmp/x", true)
	m = typeString(t, m, "no")
	m = pressEnter(t, m)

	if !m.quitting || m.confirmed {
		t.Errorf("after no+enter: quitting=%v confirmed=%v", m.quitting, m.confirmed)
	}
}

func TestOverwriteModelInvalidThenValid(t *testing.T) {
	m := newOverwriteModel("/tmp/x", true)
	m = typeString(t, m, "zzz")
	m = pressEnter(t, m)

	if m.quitting {
		t.Fatal("model should keep asking after invalid input")
	}
	if !m.invalid {
		t.Error("invalid flag should be set")
	}

	m = typeString(t, m, "yes")
	m = pressEnter(t, m)
	if !m.quitting || !m.confirmed {
		t.Errorf("after yes+enter: quitting=%v confirmed=%v", m.quitting, m.confirmed)
	}
}

func TestOverwriteModelEscape(t *testing.T) {
	m := newOverwriteModel("/tmp/x", false)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(overwriteModel)

	if !m.cancelled || m.confirmed {
		t.Errorf("after esc: cancelled=%v confirmed=%v", m.cancelled, m.confirmed)
	}
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		input    string
		want     bool
		wantOk   bool
	}{
		{"y", true, true},
		{"Y", true, true},
		{"yes", true, true},
		{" YES ", true, true},
		{"n", false, true},
		{"no", false, true},
		{"", false, false},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		got, ok := ParseYesNo(tt.input)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("ParseYesNo(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOk)
		}
	}
}
