package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EO-DataHub/eodhp-directory-services/internal/directory"
	"github.com/EO-DataHub/eodhp-directory-services/internal/profile"
	"github.com/EO-DataHub/eodhp-directory-services/internal/validate"
	"github.com/EO-DataHub/eodhp-directory-services/models"
)

// maxRequestBody bounds decoded request bodies.
const maxRequestBody = 1 << 20

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most curent data
	w.Header().Set("Cache-Control", "max-age=0")

	// Conditionally set the Location header if provided
	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// HandleErrResponse writes err in the standard envelope with the given status.
func HandleErrResponse(w http.ResponseWriter, statusCode int, err error) {
	_, code := classify(err)
	WriteResponse(w, statusCode, models.Response{
		Success:      0,
		ErrorCode:    code,
		ErrorDetails: err.Error(),
	})
}

// HandleDomainErr picks the status code from the error itself.
func HandleDomainErr(w http.ResponseWriter, err error) {
	status, _ := classify(err)
	HandleErrResponse(w, status, err)
}

func HandleSuccessResponse(w http.ResponseWriter, statusCode int, data interface{}, location string) {
	WriteResponse(w, statusCode, models.Response{
		Success: 1,
		Data:    data,
	}, location)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, validate.ErrMalformed), errors.Is(err, directory.ErrIDMismatch):
		return http.StatusBadRequest, models.ErrCodeValidation
	case errors.Is(err, profile.ErrNoAssetURI):
		return http.StatusUnprocessableEntity, models.ErrCodeValidation
	case errors.Is(err, directory.ErrDuplicateID):
		return http.StatusConflict, models.ErrCodeDuplicateID
	case errors.Is(err, directory.ErrNotFound):
		return http.StatusNotFound, models.ErrCodeNotFound
	case errors.Is(err, profile.ErrMissingField):
		return http.StatusBadRequest, models.ErrCodeMissingField
	case errors.Is(err, profile.ErrPermissionDenied):
		return http.StatusForbidden, models.ErrCodePermissionDenied
	case errors.Is(err, profile.ErrPickInProgress):
		return http.StatusConflict, models.ErrCodeBusy
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, models.ErrCodeBadRequest
	default:
		return http.StatusInternalServerError, ""
	}
}

var errBadRequest = errors.New("invalid request")

// decodeBody reads a JSON body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(v); err != nil {
		return errors.Join(errBadRequest, err)
	}
	return nil
}
