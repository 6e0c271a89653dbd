package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roadfleet/roadfleet/internal/server/models"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	dtos := make([]userDTO, 0, len(list))
	for i := range list {
		dtos = append(dtos, toUserDTO(&list[i]))
	}
	writeData(w, http.StatusOK, dtos)
}

func (s *Server) handleUpdateUserDetails(w http.ResponseWriter, r *http.Request) {
	var patch models.UserDetailsPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.users.UpdateDetails(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, toUserDTO(user))
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}
