package transport

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"sales/pkg/domain/model"
)

const sessionCookie = "sid"

type sessionKey struct{}

// loadSession attaches the caller's session, if any, to the request context.
func (h *Handler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(sessionCookie)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := h.sessions.Find(r.Context(), c.Value)
		if errors.Is(err, model.ErrSessionNotFound) {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			h.writeFailure(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) (*model.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*model.Session)
	return session, ok
}

type sessionHandlerFunc func(w http.ResponseWriter, r *http.Request, session *model.Session)

// requireRole rejects requests without a session, and with roles given,
// sessions of any other role.
func (h *Handler) requireRole(next sessionHandlerFunc, roles ...model.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, session.Role) {
			writeError(w, http.StatusForbidden, "not allowed for role "+string(session.Role))
			return
		}
		next(w, r, session)
	}
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
