// Package tui implements the terminal user interface of the Study Partner
// client: a login flow (menu, login, register, demo shortcut) followed by a
// main loop with the notes dashboard, upload, semantic search, and the study
// screen with summary, flashcard, and quiz tabs.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studypartner/go-study-partner/internal/config"
	"github.com/studypartner/go-study-partner/internal/logger"
	"github.com/studypartner/go-study-partner/internal/service"
	"github.com/studypartner/go-study-partner/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	version  string
}

func New(services *service.ClientServices, appCfg config.ClientApp, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, version: appCfg.Version}, nil
}

// LoginFlow runs the pre-authentication part of the UI and blocks until the
// user is logged in or quits. Returns [ErrUserQuit] when the user bails out.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.version)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the post-authentication UI and blocks until the user quits
// or logs out. Returns logout=true when the caller should restart the login
// flow instead of exiting.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
