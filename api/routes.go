package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/series", handler.GetSeries).Methods("GET")
	api.HandleFunc("/summary", handler.GetSummary).Methods("GET")
	api.HandleFunc("/assets", handler.GetAssets).Methods("GET")
	api.HandleFunc("/investments", handler.GetAllInvestments).Methods("GET")
	api.HandleFunc("/investments", handler.AddInvestment).Methods("POST")
	api.HandleFunc("/investments/{id}", handler.RemoveInvestment).Methods("DELETE")

	return r
}
