// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/studypartner/go-study-partner/internal/logger"
	"github.com/studypartner/go-study-partner/internal/service"
	"github.com/studypartner/go-study-partner/internal/tui"
)

// App drives the client lifecycle: session restore, login flow, main loop.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are not initialized")
	}
	if ui == nil {
		return nil, errors.New("ui is not initialized")
	}

	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run blocks until the user quits. A logout from the main loop restarts the
// login flow instead of exiting.
func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		// Anything short of a working session means the user logs in by hand.
		if !errors.Is(err, service.ErrNoSavedSession) && !errors.Is(err, service.ErrSessionExpired) {
			a.logger.Warn().Err(err).Msg("session restore failed")
		}

		user, err = a.tui.LoginFlow(ctx)
		if err != nil {
			return loginFlowError(err)
		}
	}

	for {
		logout, loopErr := a.tui.MainLoop(ctx, user)
		if loopErr != nil {
			return fmt.Errorf("main loop error: %w", loopErr)
		}
		if !logout {
			return nil
		}

		if logoutErr := a.services.AuthService.Logout(ctx); logoutErr != nil {
			a.logger.Warn().Err(logoutErr).Msg("logout cleanup failed")
		}

		user, err = a.tui.LoginFlow(ctx)
		if err != nil {
			return loginFlowError(err)
		}
	}
}

// loginFlowError treats the user closing the login screen as a clean exit.
func loginFlowError(err error) error {
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return fmt.Errorf("login flow error: %w", err)
}
