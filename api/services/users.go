package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/EO-DataHub/eodhp-directory-services/internal/directory"
	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

func userID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["user-id"], 10, 64)
	if err != nil {
		return 0, errors.Join(errBadRequest, fmt.Errorf("invalid user id: %w", err))
	}
	return id, nil
}

func usersResponse(users []models.UserRecord) models.UsersResponse {
	return models.UsersResponse{Users: users, Count: len(users)}
}

// GetUsersService returns the ordered directory.
func GetUsersService(svc *Service, w http.ResponseWriter, r *http.Request) {
	HandleSuccessResponse(w, http.StatusOK, usersResponse(svc.Reconciler.Directory().Snapshot()), "")
}

// GetUserService returns a single directory entry.
func GetUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		HandleDomainErr(w, err)
		return
	}

	user, ok := svc.Reconciler.Directory().Get(id)
	if !ok {
		HandleDomainErr(w, fmt.Errorf("%w: %d", directory.ErrNotFound, id))
		return
	}
	HandleSuccessResponse(w, http.StatusOK, models.UserResponse{User: user}, "")
}

// EditUserService forwards a copy of the entry to the edit screen.
func EditUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		HandleDomainErr(w, err)
		return
	}

	req, err := svc.Reconciler.Directory().EditRequestFor(id)
	if err != nil {
		HandleDomainErr(w, err)
		return
	}
	HandleSuccessResponse(w, http.StatusOK, req, "")
}

// NewUserService opens the edit screen in creation mode.
func NewUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	HandleSuccessResponse(w, http.StatusOK, svc.Reconciler.Directory().NewEditRequest(), "")
}

// CreateUserService reports a created record to the directory.
func CreateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	session := directory.NewEditSession(svc.Reconciler.Directory().NewEditRequest())
	commitEdit(svc, session, http.StatusCreated, w, r)
}

// UpdateUserService reports an updated record to the directory.
func UpdateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		HandleDomainErr(w, err)
		return
	}

	req, err := svc.Reconciler.Directory().EditRequestFor(id)
	if err != nil {
		HandleDomainErr(w, err)
		return
	}
	commitEdit(svc, directory.NewEditSession(req), http.StatusOK, w, r)
}

func commitEdit(svc *Service, session *directory.EditSession, status int, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var raw json.RawMessage
	if err := decodeBody(w, r, &raw); err != nil {
		HandleDomainErr(w, err)
		return
	}

	event, _, err := session.Commit(raw)
	if err != nil {
		logger.Debug().Err(err).Msg("Edited user record rejected")
		HandleDomainErr(w, err)
		return
	}

	out, err := svc.Reconciler.Submit(r.Context(), event)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to submit directory event")
		HandleErrResponse(w, http.StatusServiceUnavailable, err)
		return
	}
	if out.Err != nil {
		HandleDomainErr(w, out.Err)
		return
	}

	location := ""
	if status == http.StatusCreated {
		location = path.Join(svc.Config.BasePath, "users", strconv.FormatInt(out.Record.ID, 10))
	}
	HandleSuccessResponse(w, status, models.UserResponse{User: out.Record}, location)
}

// NavigationService merges the records carried back by a navigation
// round-trip. Malformed records are dropped without telling the caller.
func NavigationService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var payload models.NavigationPayload
	if err := decodeBody(w, r, &payload); err != nil {
		HandleDomainErr(w, err)
		return
	}

	if _, err := svc.Reconciler.ApplyNavigation(r.Context(), payload); err != nil {
		logger.Error().Err(err).Msg("Failed to apply navigation payload")
		HandleErrResponse(w, http.StatusServiceUnavailable, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, usersResponse(svc.Reconciler.Directory().Snapshot()), "")
}
