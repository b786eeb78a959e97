package handlers

import (
	"net/http"

	"github.com/EO-DataHub/eodhp-directory-services/api/services"
)

func GetUsers(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUsersService(svc, w, r)
	}
}

func GetUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUserService(svc, w, r)
	}
}

func CreateUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateUserService(svc, w, r)
	}
}

func UpdateUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.UpdateUserService(svc, w, r)
	}
}

func EditUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.EditUserService(svc, w, r)
	}
}

func NewUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.NewUserService(svc, w, r)
	}
}

func ApplyNavigation(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.NavigationService(svc, w, r)
	}
}
