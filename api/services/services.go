package services

import (
	"github.com/EO-DataHub/eodhp-directory-services/internal/appconfig"
	"github.com/EO-DataHub/eodhp-directory-services/internal/directory"
	"github.com/EO-DataHub/eodhp-directory-services/internal/listing"
	"github.com/EO-DataHub/eodhp-directory-services/internal/profile"
)

// Service contains all shared dependencies for handlers.
type Service struct {
	Config     *appconfig.Config
	Reconciler *directory.Reconciler
	Loader     *listing.Loader
	Profile    *profile.Form
}
