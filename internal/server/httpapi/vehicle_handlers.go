package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/roadfleet/roadfleet/internal/server/models"
	"github.com/roadfleet/roadfleet/internal/server/repositories/vehicles"
)

// vehicleRequest is the create/update payload. On update, absent fields are
// left unchanged.
type vehicleRequest struct {
	Name        *string             `json:"name"`
	Brand       *string             `json:"brand"`
	VehicleType *string             `json:"vehicleType"`
	Location    *string             `json:"location"`
	Seats       *int                `json:"seats"`
	Features    []string            `json:"features"`
	Image       *string             `json:"image"`
	RentalPlans []models.RentalPlan `json:"rentalPlans"`
	Status      *string             `json:"status"`
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

type vehicleListResponse struct {
	Success    bool          `json:"success"`
	Data       []vehicleDTO  `json:"data"`
	Pagination paginationDTO `json:"pagination"`
}

func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := models.VehicleFilter{
		Brand:       q.Get("brand"),
		VehicleType: q.Get("vehicleType"),
		Location:    q.Get("location"),
		Status:      q.Get("status"),
	}

	result, err := s.vehicles.List(r.Context(), filter, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	dtos := make([]vehicleDTO, 0, len(result.Items))
	for i := range result.Items {
		dtos = append(dtos, toVehicleDTO(&result.Items[i]))
	}
	writeJSON(w, http.StatusOK, vehicleListResponse{
		Success: true,
		Data:    dtos,
		Pagination: paginationDTO{
			Page:        result.Page,
			Limit:       result.Limit,
			Total:       result.Total,
			TotalPages:  result.TotalPages,
			HasNextPage: result.HasNextPage,
			HasPrevPage: result.HasPrevPage,
		},
	})
}

func (s *Server) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	seats := 0
	if req.Seats != nil {
		seats = *req.Seats
	}
	vehicle := &models.Vehicle{
		Name:        str(req.Name),
		Brand:       str(req.Brand),
		VehicleType: str(req.VehicleType),
		Location:    str(req.Location),
		Seats:       seats,
		Features:    req.Features,
		Image:       str(req.Image),
		RentalPlans: req.RentalPlans,
		Status:      str(req.Status),
	}

	created, err := s.vehicles.Create(r.Context(), vehicle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, toVehicleDTO(created))
}

func (s *Server) handleUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	patch := vehicles.VehiclePatch{
		Name:        req.Name,
		Brand:       req.Brand,
		VehicleType: req.VehicleType,
		Location:    req.Location,
		Seats:       req.Seats,
		Features:    req.Features,
		Image:       req.Image,
		RentalPlans: req.RentalPlans,
		Status:      req.Status,
	}

	updated, err := s.vehicles.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, toVehicleDTO(updated))
}

func (s *Server) handleDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := s.vehicles.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (s *Server) handleVehicleImageURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.vehicles.ImageUploadURL(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Key     string `json:"key"`
		URL     string `json:"url"`
	}{Success: true, Key: key, URL: url})
}
