package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// SessionDuration is the lifetime of the session cookie issued at login.
const SessionDuration = 24 * time.Hour

const sessionCookieName = "jwt"

var (
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrExpiredToken = errors.New("auth: token expired")
)

// Session is the decoded identity carried by a verified token. It lives for a
// single request and is handed explicitly to whatever renders the page.
type Session struct {
	UserID    int
	Role      string
	Username  string
	FullName  string
	Email     string
	ExpiresAt time.Time
}

// IsAdmin reports whether the session carries the admin role. A nil session is
// never an admin.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// Claims is the JWT payload issued by the auth service.
type Claims struct {
	UserID   int    `json:"user_id"`
	Role     string `json:"role"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

func (c *Claims) session() *Session {
	s := &Session{
		UserID:   c.UserID,
		Role:     c.Role,
		Username: c.Username,
		FullName: c.FullName,
		Email:    c.Email,
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}

// Verifier checks HS256 tokens against the current secret and, during a
// rotation window, any previous secrets.
type Verifier struct {
	keys   [][]byte
	parser *jwt.Parser
}

// NewVerifier builds a Verifier. Empty previous secrets are ignored.
func NewVerifier(secret string, previous ...string) *Verifier {
	keys := [][]byte{[]byte(secret)}
	for _, p := range previous {
		if p != "" {
			keys = append(keys, []byte(p))
		}
	}
	return &Verifier{
		keys: keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify validates the token signature and claims and returns the session it
// asserts.
func (v *Verifier) Verify(token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	var lastErr error
	for _, key := range v.keys {
		claims := &Claims{}
		_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err == nil {
			return claims.session(), nil
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		// only a signature mismatch is worth retrying with an older key
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidToken, lastErr)
}

// SessionCookieName returns the name of the cookie carrying the token.
func SessionCookieName() string {
	return sessionCookieName
}

// SetSessionCookie stores the token in the session cookie for SessionDuration.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
