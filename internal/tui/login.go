package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studypartner/go-study-partner/internal/service"
	"github.com/studypartner/go-study-partner/models"
)

const (
	demoEmail    = "demo@studypartner.com"
	demoPassword = "demo123"
)

// LoginModel is the credentials page. It also serves the menu's demo
// shortcut: a DemoLoginRequest prefills the demo account and submits
// immediately.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs  []textinput.Model
	focused int

	submitting bool
	errText    string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) LoginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{email, password},
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DemoLoginRequest:
		m.inputs[0].SetValue(demoEmail)
		m.inputs[1].SetValue(demoPassword)
		m.submitting = true
		m.errText = ""
		return m, m.cmdLogin()

	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errText = m.humanizeAuthError(msg.Err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(msg, keys.tab):
			m.focusInput((m.focused + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusInput((m.focused + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.focused < len(m.inputs)-1 {
				m.focusInput(m.focused + 1)
				return m, nil
			}
			m.submitting = true
			m.errText = ""
			return m, m.cmdLogin()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *LoginModel) focusInput(idx int) {
	m.inputs[m.focused].Blur()
	m.focused = idx
	m.inputs[m.focused].Focus()
}

func (m LoginModel) cmdLogin() tea.Cmd {
	req := models.LoginRequest{
		Email:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}

	return func() tea.Msg {
		user, err := m.auth.Login(m.ctx, req)
		return LoginResult{User: user, Err: err}
	}
}

func (m LoginModel) humanizeAuthError(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Wrong email or password"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString("Email:    " + m.inputs[0].View() + "\n")
	b.WriteString("Password: " + m.inputs[1].View() + "\n")

	if m.submitting {
		b.WriteString("\nLogging in...\n")
	}
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}

	return renderPage("LOG IN", b.String(), "tab: next field • enter: submit • esc: back")
}
