package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studypartner/go-study-partner/internal/service"
	"github.com/studypartner/go-study-partner/internal/validators"
	"github.com/studypartner/go-study-partner/models"
)

// RegisterModel is the account creation page. The backend hands out a token
// on registration, so a successful submit logs the new user straight in.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs  []textinput.Model
	focused int

	submitting bool
	errText    string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) RegisterModel {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 128
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password (6+ characters)"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{name, email, password},
	}
}

func (m RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errText = m.humanizeRegisterError(msg.Err)
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
			return m, m.cmdRegister()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *RegisterModel) focusInput(idx int) {
	m.inputs[m.focused].Blur()
	m.focused = idx
	m.inputs[m.focused].Focus()
}

func (m RegisterModel) cmdRegister() tea.Cmd {
	req := models.RegisterRequest{
		Name:     strings.TrimSpace(m.inputs[0].Value()),
		Email:    strings.TrimSpace(m.inputs[1].Value()),
		Password: m.inputs[2].Value(),
	}

	return func() tea.Msg {
		user, err := m.auth.Register(m.ctx, req)
		return LoginResult{User: user, Err: err}
	}
}

func (m RegisterModel) humanizeRegisterError(err error) string {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return "An account with this email already exists"
	case errors.Is(err, validators.ErrInvalidEmail), errors.Is(err, validators.ErrEmptyEmail):
		return "Please enter a valid email address"
	case errors.Is(err, validators.ErrPasswordTooShort), errors.Is(err, validators.ErrEmptyPassword):
		return "Password must be at least 6 characters"
	case errors.Is(err, validators.ErrEmptyName):
		return "Please enter your name"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func (m RegisterModel) View() string {
	var b strings.Builder

	b.WriteString("Name:     " + m.inputs[0].View() + "\n")
	b.WriteString("Email:    " + m.inputs[1].View() + "\n")
	b.WriteString("Password: " + m.inputs[2].View() + "\n")

	if m.submitting {
		b.WriteString("\nCreating the account...\n")
	}
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}

	return renderPage("CREATE AN ACCOUNT", b.String(), "tab: next field • enter: submit • esc: back")
}
