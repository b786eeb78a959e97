package services

import (
	"net/http"

	"github.com/EO-DataHub/eodhp-directory-services/models"
)

// Tabs lists the screens of the app in navigation order.
var Tabs = []string{"Welcome", "Profile", "API Data", "User List", "Map"}

// GetWelcomeService returns the welcome banner.
func GetWelcomeService(w http.ResponseWriter, r *http.Request) {
	HandleSuccessResponse(w, http.StatusOK, models.WelcomeResponse{
		Title:    "Welcome to My App!",
		Subtitle: "Created for CA 3 Assignment",
		Tabs:     Tabs,
	}, "")
}
