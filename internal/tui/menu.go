package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	menuItemLogin = iota
	menuItemRegister
	menuItemDemo
)

var menuItems = []string{
	"Log in",
	"Create an account",
	"Try the demo account",
}

// MenuModel is the entry page of the login flow.
type MenuModel struct {
	cursor int
}

func NewMenuModel() MenuModel {
	return MenuModel{}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, m.openSelected()
	}

	return m, nil
}

func (m MenuModel) openSelected() tea.Cmd {
	switch m.cursor {
	case menuItemLogin:
		return func() tea.Msg { return NavigateTo{Page: "login"} }
	case menuItemRegister:
		return func() tea.Msg { return NavigateTo{Page: "register"} }
	case menuItemDemo:
		return func() tea.Msg { return NavigateTo{Page: "login", Payload: DemoLoginRequest{}} }
	}
	return nil
}

func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("Welcome to Study Partner.\n\n")
	for i, item := range menuItems {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, item))
	}

	return renderPage("STUDY PARTNER", b.String(), "↑/↓: select • enter: open • v: version")
}
