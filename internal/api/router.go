package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"airport-nav-service/internal/api/handlers"
	"airport-nav-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.FacilityRepository, provider ports.MapsProvider, notifier ports.Notifier) http.Handler {
	mux := http.NewServeMux()
	validate := validator.New()

	facilityHandler := &handlers.FacilityHandler{
		Repo:     repo,
		Notifier: notifier,
		Validate: validate,
	}
	navHandler := &handlers.NavigationHandler{
		Repo:     repo,
		Provider: provider,
		Notifier: notifier,
		Validate: validate,
	}

	mux.HandleFunc("/health", handlers.Health)

	mux.HandleFunc("/route", navHandler.Route)
	mux.HandleFunc("/navigate", navHandler.Navigate)
	mux.HandleFunc("/nearby-facilities", navHandler.Nearby)
	mux.HandleFunc("/geocode", navHandler.Geocode)
	mux.HandleFunc("/reverse-geocode", navHandler.ReverseGeocode)
	mux.HandleFunc("/get-distance", navHandler.Distance)

	mux.HandleFunc("/airport/facilities", facilityHandler.Facilities)
	mux.HandleFunc("/airport/facilities/search", facilityHandler.Search)
	mux.HandleFunc("/airport/facilities/stats", facilityHandler.Stats)
	mux.HandleFunc("/airport/facilities/batch", facilityHandler.BatchCreate)
	mux.HandleFunc("/airport/facilities/batch-update", facilityHandler.BatchUpdate)
	mux.HandleFunc("/airport/facilities/clear", facilityHandler.Clear)
	mux.HandleFunc("/all/airport/facilities", facilityHandler.ListAll)

	return requestIDMiddleware(loggingMiddleware(mux))
}
