package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studypartner/go-study-partner/models"
)

// NavigateTo switches the login-flow router to another page. Payload, when
// set, is delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow. Produced by the login page, the
// register page (accounts are logged in right after creation), and the demo
// shortcut on the menu.
type LoginResult struct {
	User models.User
	Err  error
}

// DemoLoginRequest asks the login page to prefill and submit the shared demo
// account credentials.
type DemoLoginRequest struct{}
