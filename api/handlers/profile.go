package handlers

import (
	"net/http"

	"github.com/EO-DataHub/eodhp-directory-services/api/services"
)

func GetProfile(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetProfileService(svc, w, r)
	}
}

func PatchProfile(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.PatchProfileService(svc, w, r)
	}
}

func SubmitProfile(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.SubmitProfileService(svc, w, r)
	}
}

func PickPhoto(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.PickPhotoService(svc, w, r)
	}
}

func PhotoLoadFailed(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.PhotoLoadFailedService(svc, w, r)
	}
}
