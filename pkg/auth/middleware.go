package auth

import (
	"log/slog"
	"net/http"
	"strings"
)

// GateOptions configures the paths Gate redirects to and which path prefixes
// are reserved for admins.
type GateOptions struct {
	LoginPath          string
	HomePath           string
	RestrictedPrefixes []string
}

func (o GateOptions) withDefaults() GateOptions {
	if o.LoginPath == "" {
		o.LoginPath = "/login"
	}
	if o.HomePath == "" {
		o.HomePath = "/"
	}
	if o.RestrictedPrefixes == nil {
		o.RestrictedPrefixes = []string{"/user"}
	}
	return o
}

func (o GateOptions) restricted(path string) bool {
	for _, p := range o.RestrictedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Gate decides for every page request whether to proceed, send the visitor to
// the login page, or bounce a non-admin out of a restricted area.
//
// Requests under the login path always proceed with the session cookie
// cleared, forcing re-authentication. Everything else needs a token that
// verifies; the session and raw token are then placed in the request context.
func Gate(v *Verifier, opts GateOptions) func(http.Handler) http.Handler {
	opts = opts.withDefaults()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if strings.HasPrefix(path, opts.LoginPath) {
				ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(SessionCookieName())
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, opts.LoginPath, http.StatusFound)
				return
			}

			session, err := v.Verify(cookie.Value)
			if err != nil {
				slog.Warn("session verification failed", "path", path, "error", err)
				http.Redirect(w, r, opts.LoginPath, http.StatusFound)
				return
			}

			if opts.restricted(path) && !session.IsAdmin() {
				slog.Info("restricted path denied", "path", path, "user_id", session.UserID, "role", session.Role)
				http.Redirect(w, r, opts.HomePath, http.StatusFound)
				return
			}

			ctx := WithSession(r.Context(), session)
			ctx = WithToken(ctx, cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards admin-only actions that live outside the restricted
// prefixes. It must run behind Gate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !SessionFromContext(r.Context()).IsAdmin() {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
