package transport

import (
	"net/http"

	"sales/pkg/domain/model"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeFailure(w, err)
		return
	}

	role, err := h.services.Auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	if previous, ok := sessionFrom(r.Context()); ok {
		if err := h.sessions.Delete(r.Context(), previous.ID); err != nil {
			h.writeFailure(w, err)
			return
		}
	}

	sessionID, err := h.sessions.NextID()
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	session := model.NewSession(sessionID, req.Username, role)
	if err := h.sessions.Save(r.Context(), session); err != nil {
		h.writeFailure(w, err)
		return
	}

	setSessionCookie(w, session.ID)
	writeJSON(w, http.StatusOK, sessionResponse{Username: session.Username, Role: session.Role})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request, session *model.Session) {
	if err := h.sessions.Delete(r.Context(), session.ID); err != nil {
		h.writeFailure(w, err)
		return
	}
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) me(w http.ResponseWriter, _ *http.Request, session *model.Session) {
	writeJSON(w, http.StatusOK, sessionResponse{Username: session.Username, Role: session.Role})
}
