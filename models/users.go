package models

import "encoding/json"

// Company is the nested employer of a user record.
type Company struct {
	Name string `json:"name"`
}

// UserRecord represents one entry of the user directory.
type UserRecord struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company Company `json:"company"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Photo   string  `json:"photo"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

// RemoteUserRecord is the subset of a user returned by the remote listing API.
type RemoteUserRecord struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company Company `json:"company"`
}

// NavigationPayload carries at most one new and one updated record back to the
// directory. The values are kept raw so that an absent key, a null and a
// malformed record can be told apart.
type NavigationPayload struct {
	NewUser     json.RawMessage `json:"newUser,omitempty"`
	UpdatedUser json.RawMessage `json:"updatedUser,omitempty"`
}

// EditRequest is forwarded to the edit screen. A nil User means creation mode,
// in which case NextID suggests a free identifier.
type EditRequest struct {
	User   *UserRecord `json:"user,omitempty"`
	NextID int64       `json:"nextId,omitempty"`
}

// CreationMode reports whether the request opens an empty record.
func (e EditRequest) CreationMode() bool {
	return e.User == nil
}

// UsersResponse holds the ordered directory.
type UsersResponse struct {
	Users []UserRecord `json:"users"`
	Count int          `json:"count"`
}

// UserResponse represents a response with a single user.
type UserResponse struct {
	User UserRecord `json:"user"`
}

// RemoteUsersResponse is the view model of the remote listing screen.
type RemoteUsersResponse struct {
	Status  string             `json:"status"`
	Users   []RemoteUserRecord `json:"users,omitempty"`
	Total   int                `json:"total"`
	Message string             `json:"message,omitempty"`
}
