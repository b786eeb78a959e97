package services

import (
	"errors"
	"net/http"

	"github.com/EO-DataHub/eodhp-directory-services/internal/profile"
	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/rs/zerolog"
)

// GetProfileService returns the profile held by the form.
func GetProfileService(svc *Service, w http.ResponseWriter, r *http.Request) {
	HandleSuccessResponse(w, http.StatusOK, models.ProfileResponse{Profile: svc.Profile.Profile()}, "")
}

// PatchProfileService sets the editable fields of the profile.
func PatchProfileService(svc *Service, w http.ResponseWriter, r *http.Request) {
	var patch models.ProfilePatch
	if err := decodeBody(w, r, &patch); err != nil {
		HandleDomainErr(w, err)
		return
	}

	p := svc.Profile.Apply(patch)
	HandleSuccessResponse(w, http.StatusOK, models.ProfileResponse{Profile: p}, "")
}

// SubmitProfileService validates the editable fields and confirms the update.
func SubmitProfileService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	msg, err := svc.Profile.Submit()
	if err != nil {
		logger.Debug().Err(err).Msg("Profile submission rejected")
		HandleDomainErr(w, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, models.ProfileResponse{
		Profile: svc.Profile.Profile(),
		Message: msg,
	}, "")
}

// PickPhotoService applies the outcome of the device media picker.
func PickPhotoService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var pick models.PhotoPick
	if err := decodeBody(w, r, &pick); err != nil {
		HandleDomainErr(w, err)
		return
	}

	p, err := svc.Profile.PickPhoto(r.Context(), profile.PickerOutcome(pick))
	if err != nil {
		if !errors.Is(err, profile.ErrPermissionDenied) {
			logger.Error().Err(err).Msg("Image picker error")
		}
		HandleDomainErr(w, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, models.ProfileResponse{Profile: p}, "")
}

// PhotoLoadFailedService falls back to the default photo.
func PhotoLoadFailedService(svc *Service, w http.ResponseWriter, r *http.Request) {
	zerolog.Ctx(r.Context()).Info().Str("photo", svc.Profile.Profile().Photo).Msg("Image loading error")

	p := svc.Profile.PhotoLoadFailed()
	HandleSuccessResponse(w, http.StatusOK, models.ProfileResponse{Profile: p}, "")
}
