package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	list, err := s.bookings.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	dtos := make([]bookingDTO, 0, len(list))
	for i := range list {
		dtos = append(dtos, toBookingDTO(&list[i]))
	}
	writeData(w, http.StatusOK, dtos)
}

func (s *Server) handleUpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	booking, err := s.bookings.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, toBookingDTO(booking))
}
