package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/taskboard/panel/internal/model"
)

// ErrMissingToken means the auth service accepted the credentials but sent no
// token back.
var ErrMissingToken = errors.New("api: login response carried no token")

type AuthClient struct {
	*Client
}

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{Client: NewClient(baseURL, timeout)}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token. The token comes from the
// jwt Set-Cookie header, or the JSON token field when no cookie is set.
func (c *AuthClient) Login(ctx context.Context, username, password string) (string, error) {
	var out loginResponse
	header, err := c.do(ctx, http.MethodPost, "/api/v1/login", nil, "",
		loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	resp := http.Response{Header: header}
	for _, ck := range resp.Cookies() {
		if ck.Name == tokenCookieName && ck.Value != "" {
			return ck.Value, nil
		}
	}
	if out.Token != "" {
		return out.Token, nil
	}
	return "", ErrMissingToken
}

func (c *AuthClient) Register(ctx context.Context, token string, req model.RegisterRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/register", nil, token, req, nil)
	return err
}

func (c *AuthClient) ListUsers(ctx context.Context, token string, search model.UserSearch) ([]model.User, error) {
	var users []model.User
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/users", search.Query(), token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *AuthClient) GetUser(ctx context.Context, token string, id int) (*model.User, error) {
	var u model.User
	if _, err := c.do(ctx, http.MethodGet, idPath("/api/v1/users", id), nil, token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *AuthClient) UpdateUser(ctx context.Context, token string, id int, req model.UserUpdateRequest) error {
	_, err := c.do(ctx, http.MethodPatch, idPath("/api/v1/users", id), nil, token, req, nil)
	return err
}

func (c *AuthClient) DeleteUser(ctx context.Context, token string, id int) error {
	_, err := c.do(ctx, http.MethodDelete, idPath("/api/v1/users", id), nil, token, nil, nil)
	return err
}
