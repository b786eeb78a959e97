package models

// Profile is the single record held by the profile form.
type Profile struct {
	Name  string `json:"name"`
	Age   string `json:"age"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

// ProfilePatch updates the editable fields of the profile. Nil means unchanged.
type ProfilePatch struct {
	Age   *string `json:"age,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// PhotoPick describes the outcome of the device media picker.
type PhotoPick struct {
	Permission string `json:"permission"`
	Cancelled  bool   `json:"cancelled"`
	URI        string `json:"uri"`
}

// ProfileResponse represents a response with the profile.
type ProfileResponse struct {
	Profile Profile `json:"profile"`
	Message string  `json:"message,omitempty"`
}

// WelcomeResponse is the welcome banner.
type WelcomeResponse struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Tabs     []string `json:"tabs"`
}
