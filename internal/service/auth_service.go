package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/pkg/api"
)

const (
	msgInvalidCredentials = "Invalid username or password. Please check and try again."
	msgLoginError         = "An error occurred during login. Please try again later."
)

// LoginResult is the outcome of a login attempt. Token is set only on success.
type LoginResult struct {
	model.ActionResult
	Token string
}

// AuthService exchanges credentials for a session token.
type AuthService interface {
	Login(ctx context.Context, form model.LoginForm) LoginResult
}

type authService struct {
	auth       AuthAPI
	activities ActivityService // optional, nil = skip
}

// NewAuthService creates an AuthService.
func NewAuthService(auth AuthAPI, activities ActivityService) AuthService {
	return &authService{auth: auth, activities: activities}
}

func (s *authService) Login(ctx context.Context, form model.LoginForm) LoginResult {
	token, err := s.auth.Login(ctx, form.Username, form.Password)
	var res LoginResult
	switch {
	case err == nil:
		res = LoginResult{ActionResult: model.Succeeded(""), Token: token}
	case api.StatusOf(err) != 0:
		slog.InfoContext(ctx, "login rejected", "username", form.Username, "status", api.StatusOf(err))
		res = LoginResult{ActionResult: model.Failed(msgInvalidCredentials)}
	case errors.Is(err, api.ErrMissingToken):
		slog.WarnContext(ctx, "login response carried no token", "username", form.Username)
		res = LoginResult{ActionResult: model.Failed(msgLoginError)}
	default:
		slog.ErrorContext(ctx, "login failed", "username", form.Username, "error", err)
		res = LoginResult{ActionResult: model.Failed(msgLoginError)}
	}

	if s.activities != nil {
		a := &model.Activity{
			Type:      ActivityLogin,
			ActorName: form.Username,
			Target:    form.Username,
			Success:   res.Success,
			Message:   res.Message,
		}
		if err := s.activities.Record(ctx, a); err != nil {
			slog.WarnContext(ctx, "record activity failed", "type", ActivityLogin, "error", err)
		}
	}
	return res
}
