package services

import (
	"context"
	"net/http"

	"github.com/EO-DataHub/eodhp-directory-services/internal/listing"
	"github.com/EO-DataHub/eodhp-directory-services/models"
)

func listingResponse(s listing.State) models.RemoteUsersResponse {
	return models.RemoteUsersResponse{
		Status:  string(s.Status),
		Users:   s.Users,
		Total:   len(s.Users),
		Message: s.Message,
	}
}

// ActivateListingService starts the fetch for a newly shown listing screen.
// With ?wait=true the response is sent once the fetch has resolved.
func ActivateListingService(svc *Service, w http.ResponseWriter, r *http.Request) {
	// The fetch outlives the request; only the configured timeout bounds it.
	ctx, cancel := context.WithTimeout(context.Background(), svc.Config.Remote.Timeout)
	done := svc.Loader.Activate(ctx)
	go func() {
		<-done
		cancel()
	}()

	status := http.StatusAccepted
	if r.URL.Query().Get("wait") == "true" {
		select {
		case <-done:
			status = http.StatusOK
		case <-r.Context().Done():
			return
		}
	}

	HandleSuccessResponse(w, status, listingResponse(svc.Loader.State()), "")
}

// DeactivateListingService stops observing the in-flight fetch.
func DeactivateListingService(svc *Service, w http.ResponseWriter, r *http.Request) {
	svc.Loader.Deactivate()
	w.WriteHeader(http.StatusNoContent)
}

// GetListingService returns the listing view model.
func GetListingService(svc *Service, w http.ResponseWriter, r *http.Request) {
	HandleSuccessResponse(w, http.StatusOK, listingResponse(svc.Loader.State()), "")
}
