package handlers

import (
	"net/http"

	"github.com/EO-DataHub/eodhp-directory-services/api/middleware"
	"github.com/EO-DataHub/eodhp-directory-services/api/services"
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the API under basePath on r.
func RegisterRoutes(r *mux.Router, svc *services.Service) {
	api := r.PathPrefix(svc.Config.BasePath).Subrouter()

	// Apply the middleware to the API routes
	api.Use(middleware.WithLogger)
	api.Use(middleware.WithMetrics)

	// Welcome
	api.HandleFunc("/welcome", GetWelcome()).Methods(http.MethodGet)

	// Profile routes
	api.HandleFunc("/profile", GetProfile(svc)).Methods(http.MethodGet)
	api.HandleFunc("/profile", PatchProfile(svc)).Methods(http.MethodPatch)
	api.HandleFunc("/profile/submit", SubmitProfile(svc)).Methods(http.MethodPost)
	api.HandleFunc("/profile/photo", PickPhoto(svc)).Methods(http.MethodPost)
	api.HandleFunc("/profile/photo/load-failed", PhotoLoadFailed(svc)).Methods(http.MethodPost)

	// Remote listing routes
	api.HandleFunc("/api-data", GetListing(svc)).Methods(http.MethodGet)
	api.HandleFunc("/api-data/activate", ActivateListing(svc)).Methods(http.MethodPost)
	api.HandleFunc("/api-data/activate", DeactivateListing(svc)).Methods(http.MethodDelete)

	// Directory routes
	api.HandleFunc("/users", GetUsers(svc)).Methods(http.MethodGet)
	api.HandleFunc("/users", CreateUser(svc)).Methods(http.MethodPost)
	api.HandleFunc("/users/new", NewUser(svc)).Methods(http.MethodGet)
	api.HandleFunc("/users/navigation", ApplyNavigation(svc)).Methods(http.MethodPost)
	api.HandleFunc("/users/{user-id:[0-9]+}", GetUser(svc)).Methods(http.MethodGet)
	api.HandleFunc("/users/{user-id:[0-9]+}", UpdateUser(svc)).Methods(http.MethodPut)
	api.HandleFunc("/users/{user-id:[0-9]+}/edit", EditUser(svc)).Methods(http.MethodGet)
}
