package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roadfleet/roadfleet/internal/logging"
	"github.com/roadfleet/roadfleet/internal/server/config"
	"github.com/roadfleet/roadfleet/internal/server/services"
)

// Server bundles the services behind the admin REST API.
type Server struct {
	auth      *services.AuthService
	bookings  *services.BookingService
	vehicles  *services.VehicleService
	users     *services.UserService
	stats     *services.StatsService
	jwtSecret []byte
	logger    logging.Logger
}

func NewServer(
	auth *services.AuthService,
	bookings *services.BookingService,
	vehicles *services.VehicleService,
	users *services.UserService,
	stats *services.StatsService,
	cfg *config.Config,
	logger logging.Logger,
) *Server {
	return &Server{
		auth:      auth,
		bookings:  bookings,
		vehicles:  vehicles,
		users:     users,
		stats:     stats,
		jwtSecret: []byte(cfg.SecretKey),
		logger:    logger,
	}
}

// Router builds the route table. Everything under /api/admin requires an
// admin bearer token.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(logRequests(s.logger))
	r.Use(observeRequests)

	r.Handle("/metrics", metricsHandler()).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/admin/login", s.handleLogin).Methods(http.MethodPost)

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(s.requireAdmin)

	admin.HandleFunc("/bookings", s.handleListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", s.handleUpdateBookingStatus).Methods(http.MethodPut)

	admin.HandleFunc("/vehicles", s.handleListVehicles).Methods(http.MethodGet)
	admin.HandleFunc("/vehicles", s.handleCreateVehicle).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{id}", s.handleUpdateVehicle).Methods(http.MethodPut)
	admin.HandleFunc("/vehicles/{id}", s.handleDeleteVehicle).Methods(http.MethodDelete)
	admin.HandleFunc("/vehicles/{id}/image-url", s.handleVehicleImageURL).Methods(http.MethodPost)

	admin.HandleFunc("/users", s.handleListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/details", s.handleUpdateUserDetails).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", s.handleDeleteUser).Methods(http.MethodDelete)

	admin.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	admin.HandleFunc("/analytics", s.handleAnalytics).Methods(http.MethodGet)

	return r
}
