package handler

import (
	"encoding/json"
	"net/http"

	"bloghub/pkg/domain"
	"bloghub/pkg/serrors"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	UserID domain.UserID `json:"userId"`
	Email  string        `json:"email"`
}

// Signup registers a new account and returns its identifier.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid request body"))

		return
	}

	user, err := h.deps.Accounts.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, signupResponse{
		UserID: user.ID,
		Email:  user.Email,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login verifies a credential and returns a bearer token for subsequent
// authenticated calls.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid request body"))

		return
	}

	token, user, err := h.deps.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  user,
	})
}
