// Package profile holds the single editable profile shown on the profile screen.
package profile

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/EO-DataHub/eodhp-directory-services/models"
)

// DefaultPhoto is shown when the selected photo cannot be loaded.
const DefaultPhoto = "https://images.unsplash.com/photo-1438761681033-6461ffad8d80"

// SuccessMessage confirms a submission.
const SuccessMessage = "Your profile has been updated!"

var (
	// ErrMissingField is wrapped by FieldError.
	ErrMissingField = errors.New("please fill in all editable fields")
	// ErrPermissionDenied is returned when media library access is refused.
	ErrPermissionDenied = errors.New("we need access to your photos")
	// ErrNoAssetURI is returned when the picker hands back an asset without a URI.
	ErrNoAssetURI = errors.New("selected image has no URI")
	// ErrPickInProgress is returned when a photo pick is already running.
	ErrPickInProgress = errors.New("a photo is already being picked")
)

// FieldError names the editable field that was left empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s is empty", ErrMissingField, e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

// DefaultProfile is the profile the form starts with when none is configured.
func DefaultProfile() models.Profile {
	return models.Profile{
		Name:  "Pascal Opara",
		Age:   "18",
		Phone: "08036100715",
		Email: "pascalpara242@gmail.com",
		Photo: DefaultPhoto,
	}
}

// Form holds the profile. Age and phone are editable; the rest is read-only.
type Form struct {
	mu           sync.Mutex
	profile      models.Profile
	defaultPhoto string
	picking      bool
	now          func() time.Time
}

func NewForm(initial models.Profile, defaultPhoto string) *Form {
	if defaultPhoto == "" {
		defaultPhoto = DefaultPhoto
	}
	return &Form{
		profile:      initial,
		defaultPhoto: defaultPhoto,
		now:          time.Now,
	}
}

// Profile returns a copy of the current profile.
func (f *Form) Profile() models.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profile
}

func (f *Form) SetAge(age string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile.Age = age
}

func (f *Form) SetPhone(phone string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile.Phone = phone
}

// Apply sets the editable fields present in patch.
func (f *Form) Apply(patch models.ProfilePatch) models.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()

	if patch.Age != nil {
		f.profile.Age = *patch.Age
	}
	if patch.Phone != nil {
		f.profile.Phone = *patch.Phone
	}
	return f.profile
}

// Submit checks the editable fields and returns the confirmation message.
// It has no other side effect.
func (f *Form) Submit() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.profile.Age == "" {
		return "", &FieldError{Field: "age"}
	}
	if f.profile.Phone == "" {
		return "", &FieldError{Field: "phone"}
	}
	return SuccessMessage, nil
}

// PhotoLoadFailed falls back to the default photo.
func (f *Form) PhotoLoadFailed() models.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.profile.Photo = f.defaultPhoto
	return f.profile
}
