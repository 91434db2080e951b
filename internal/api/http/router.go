package http

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"scooter-rental/internal/logger"
	"scooter-rental/internal/security"
)

// NewRouter registers the API routes. Route names double as keys into
// config.EndpointSecurityConfig. A nil tokenManager disables operator auth.
// API handlers run while holding mu, which must also guard any other caller of
// the same company.
func NewRouter(h *Handler, tokenManager security.TokenManager, mu sync.Locker) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestID, requestLogger)
	if tokenManager != nil {
		auth := &authMiddleware{tokenManager: tokenManager}
		router.Use(auth.Handler)
	} else {
		logger.Warn("Operator authentication disabled, no JWT secret configured")
	}

	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet).Name("Health")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(serialize(mu))

	api.HandleFunc("/scooters", h.ListScooters).Methods(http.MethodGet).Name("ListScooters")
	api.HandleFunc("/scooters", h.AddScooter).Methods(http.MethodPost).Name("AddScooter")
	api.HandleFunc("/scooters/{id}", h.GetScooter).Methods(http.MethodGet).Name("GetScooter")
	api.HandleFunc("/scooters/{id}", h.RemoveScooter).Methods(http.MethodDelete).Name("RemoveScooter")
	api.HandleFunc("/scooters/{id}/rent", h.StartRent).Methods(http.MethodPost).Name("StartRent")
	api.HandleFunc("/scooters/{id}/return", h.EndRent).Methods(http.MethodPost).Name("EndRent")
	api.HandleFunc("/rentals/open", h.ListOpenRentals).Methods(http.MethodGet).Name("ListOpenRentals")
	api.HandleFunc("/income", h.CalculateIncome).Methods(http.MethodGet).Name("CalculateIncome")

	return router
}
