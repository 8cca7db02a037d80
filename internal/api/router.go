package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aserravalle/travelling-salesman-backend/internal/api/handlers"
	"github.com/aserravalle/travelling-salesman-backend/internal/config"
	"github.com/aserravalle/travelling-salesman-backend/internal/platform/obs"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	provider ports.TravelTimeProvider,
	geocoder ports.Geocoder,
	notifier ports.Notifier,
	dispatch config.Dispatch,
) http.Handler {
	obs.RegisterMetrics()

	mux := http.NewServeMux()

	rosterHandler := &handlers.RosterHandler{
		Provider: provider,
		Geocoder: geocoder,
		Dispatch: dispatch,
	}
	contactHandler := &handlers.ContactHandler{Notifier: notifier}

	mux.HandleFunc("/", handlers.Home)
	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/assign_jobs", rosterHandler.AssignJobs)
	mux.HandleFunc("/contact_us", contactHandler.ContactUs)
	mux.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
