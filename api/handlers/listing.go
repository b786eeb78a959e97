package handlers

import (
	"net/http"

	"github.com/EO-DataHub/eodhp-directory-services/api/services"
)

func GetListing(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetListingService(svc, w, r)
	}
}

func ActivateListing(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.ActivateListingService(svc, w, r)
	}
}

func DeactivateListing(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeactivateListingService(svc, w, r)
	}
}
