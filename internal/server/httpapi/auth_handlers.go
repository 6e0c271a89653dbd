package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/roadfleet/roadfleet/internal/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    userDTO `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, fmt.Errorf("%w: email and password are required", common.ErrorValidation))
		return
	}

	token, user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, errorBody{Message: "Invalid credentials"})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		User:    toUserDTO(user),
	})
}
