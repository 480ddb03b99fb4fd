package model

import "strings"

var Roles = []string{"admin", "member"}

type User struct {
	ID        int    `json:"user_id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// FirstName returns the part of FullName before the first space.
func (u User) FirstName() string {
	first, _, _ := strings.Cut(u.FullName, " ")
	return first
}

// LastName returns the remainder of FullName after the first space.
func (u User) LastName() string {
	_, last, _ := strings.Cut(u.FullName, " ")
	return last
}

// RegisterRequest is the body of POST /api/v1/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// UserUpdateRequest is the body of PATCH /api/v1/users/:id. Only set fields
// are sent, so a password reset carries the password alone.
type UserUpdateRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}
