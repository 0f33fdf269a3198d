package middleware

import (
	"context"
	"log/slog"
	"net/http"

	h "elevatecart/internal/delivery/http/helpers"
	"elevatecart/internal/domain"
)

type contextKey string

const sessionIDKey contextKey = "cartSessionID"

// SessionCookieName is the cookie holding the signed cart session token.
const SessionCookieName = "cart_session"

// SessionTokens issues and verifies cart session tokens.
type SessionTokens interface {
	domain.SessionIssuer
	domain.SessionVerifier
}

// SetSessionID returns a context with the cart session ID set. Used by the session middleware.
func SetSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext returns the cart session ID from the context, if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// SessionCookie controls the attributes of the cart_session cookie. A zero
// SameSite means Lax. SameSite None is for cart pages served from another
// site; browsers only accept it together with Secure, so it implies Secure.
type SessionCookie struct {
	Secure   bool
	SameSite http.SameSite
}

func (o SessionCookie) cookie(token string) *http.Cookie {
	c := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: o.SameSite,
	}
	if c.SameSite == 0 || c.SameSite == http.SameSiteDefaultMode {
		c.SameSite = http.SameSiteLaxMode
	}
	if c.SameSite == http.SameSiteNoneMode {
		c.Secure = true
	}
	return c
}

// CartSession returns a wrapper that resolves the visitor's cart session from
// the cart_session cookie. A missing or invalid token starts a new session and
// sets a fresh cookie. The cookie has no expiry so it ends with the browser session.
func CartSession(tokens SessionTokens, newID func() (string, error), opts SessionCookie, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
				if sessionID, err := tokens.Verify(c.Value); err == nil {
					next(w, r.WithContext(SetSessionID(r.Context(), sessionID)))
					return
				}
				logger.DebugContext(r.Context(), "discarding invalid cart session token")
			}

			sessionID, err := newID()
			if err != nil {
				logger.ErrorContext(r.Context(), "failed to start cart session", "err", err)
				h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "failed to start cart session")
				return
			}
			token, err := tokens.Issue(sessionID)
			if err != nil {
				logger.ErrorContext(r.Context(), "failed to start cart session", "err", err)
				h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "failed to start cart session")
				return
			}
			http.SetCookie(w, opts.cookie(token))
			next(w, r.WithContext(SetSessionID(r.Context(), sessionID)))
		}
	}
}
