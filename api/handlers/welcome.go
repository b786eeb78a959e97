package handlers

import (
	"net/http"

	"github.com/EO-DataHub/eodhp-directory-services/api/services"
)

func GetWelcome() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetWelcomeService(w, r)
	}
}
