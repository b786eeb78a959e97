package profile

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/EO-DataHub/eodhp-directory-services/models"
)

// Asset is one item returned by the media picker.
type Asset struct {
	URI string
}

// PickResult is the outcome of launching the picker.
type PickResult struct {
	Cancelled bool
	Assets    []Asset
}

// MediaPicker is the device media library.
type MediaPicker interface {
	RequestPermission(ctx context.Context) (bool, error)
	Launch(ctx context.Context) (PickResult, error)
}

// PickPhoto asks for permission, launches the picker and replaces the photo
// with the selected asset. The photo is left unchanged on any failure or
// cancellation.
func (f *Form) PickPhoto(ctx context.Context, picker MediaPicker) (models.Profile, error) {
	f.mu.Lock()
	if f.picking {
		f.mu.Unlock()
		return models.Profile{}, ErrPickInProgress
	}
	f.picking = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.picking = false
		f.mu.Unlock()
	}()

	granted, err := picker.RequestPermission(ctx)
	if err != nil {
		return f.Profile(), fmt.Errorf("failed to request media library permission: %w", err)
	}
	if !granted {
		return f.Profile(), ErrPermissionDenied
	}

	result, err := picker.Launch(ctx)
	if err != nil {
		return f.Profile(), fmt.Errorf("failed to launch media picker: %w", err)
	}
	if result.Cancelled || len(result.Assets) == 0 {
		return f.Profile(), nil
	}

	uri := result.Assets[0].URI
	if uri == "" {
		return f.Profile(), ErrNoAssetURI
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile.Photo = bustCache(uri, f.now().UnixMilli())
	return f.profile, nil
}

// bustCache appends a ts query parameter so a re-picked image is reloaded.
func bustCache(uri string, ts int64) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri + "?ts=" + strconv.FormatInt(ts, 10)
	}
	q := u.Query()
	q.Set("ts", strconv.FormatInt(ts, 10))
	u.RawQuery = q.Encode()
	return u.String()
}

// PickerOutcome replays an outcome reported by a client as a MediaPicker.
type PickerOutcome models.PhotoPick

func (p PickerOutcome) RequestPermission(context.Context) (bool, error) {
	return p.Permission == "granted", nil
}

func (p PickerOutcome) Launch(context.Context) (PickResult, error) {
	if p.Cancelled {
		return PickResult{Cancelled: true}, nil
	}
	return PickResult{Assets: []Asset{{URI: p.URI}}}, nil
}
