package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/taskboard/panel/internal/model"
)

// DefaultPassword is the password given to new users and password resets.
func DefaultPassword(now time.Time) string {
	return fmt.Sprintf("P@ssw0rd@%d", now.Year())
}

// UserService proxies user management to the auth service.
type UserService interface {
	List(ctx context.Context, token string, search model.UserSearch) []model.User
	Get(ctx context.Context, token string, id int) (*model.User, error)
	Add(ctx context.Context, token string, form model.UserForm) model.ActionResult
	Edit(ctx context.Context, token string, id int, form model.UserForm) model.ActionResult
	Delete(ctx context.Context, token string, id int) model.ActionResult
	ResetPassword(ctx context.Context, token string, id int, password string) model.ActionResult
}

type userService struct {
	auth        AuthAPI
	emailDomain string
	activities  ActivityService // optional, nil = skip
	now         func() time.Time
}

// NewUserService creates a UserService. New users get <username>@emailDomain.
func NewUserService(auth AuthAPI, emailDomain string, activities ActivityService) UserService {
	return &userService{auth: auth, emailDomain: emailDomain, activities: activities, now: time.Now}
}

func (s *userService) email(username string) string {
	return username + "@" + s.emailDomain
}

// List returns matching users. A failed fetch yields an empty list.
func (s *userService) List(ctx context.Context, token string, search model.UserSearch) []model.User {
	users, err := s.auth.ListUsers(ctx, token, search)
	if err != nil {
		slog.ErrorContext(ctx, "list users failed", "error", err)
		return []model.User{}
	}
	return users
}

func (s *userService) Get(ctx context.Context, token string, id int) (*model.User, error) {
	return s.auth.GetUser(ctx, token, id)
}

func (s *userService) Add(ctx context.Context, token string, form model.UserForm) model.ActionResult {
	req := model.RegisterRequest{
		Username: form.Username,
		Password: DefaultPassword(s.now()),
		Email:    s.email(form.Username),
		FullName: form.FullName(),
		Role:     form.Role,
	}
	res := succeeded("User", "added")
	if err := s.auth.Register(ctx, token, req); err != nil {
		res = failed(ctx, "add user", err, "add", "user")
	}
	record(ctx, s.activities, ActivityUserCreate, form.Username, res)
	return res
}

func (s *userService) Edit(ctx context.Context, token string, id int, form model.UserForm) model.ActionResult {
	req := model.UserUpdateRequest{
		Username: form.Username,
		Email:    s.email(form.Username),
		FullName: form.FullName(),
		Role:     form.Role,
	}
	res := succeeded("User", "updated")
	if err := s.auth.UpdateUser(ctx, token, id, req); err != nil {
		res = failed(ctx, "edit user", err, "edit", "user")
	}
	record(ctx, s.activities, ActivityUserUpdate, form.Username, res)
	return res
}

func (s *userService) Delete(ctx context.Context, token string, id int) model.ActionResult {
	res := succeeded("User", "deleted")
	if err := s.auth.DeleteUser(ctx, token, id); err != nil {
		res = failed(ctx, "delete user", err, "delete", "user")
	}
	record(ctx, s.activities, ActivityUserDelete, "user "+strconv.Itoa(id), res)
	return res
}

// ResetPassword sets the user's password, falling back to DefaultPassword
// when password is empty.
func (s *userService) ResetPassword(ctx context.Context, token string, id int, password string) model.ActionResult {
	if password == "" {
		password = DefaultPassword(s.now())
	}
	res := model.Succeeded("Reset password successfully.")
	if err := s.auth.UpdateUser(ctx, token, id, model.UserUpdateRequest{Password: password}); err != nil {
		res = failed(ctx, "reset password", err, "reset", "password")
	}
	record(ctx, s.activities, ActivityPasswordReset, "user "+strconv.Itoa(id), res)
	return res
}
