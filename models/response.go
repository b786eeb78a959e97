package models

// Response represents a generic API response structure.
type Response struct {
	Success      int         `json:"success"`
	ErrorCode    string      `json:"error_code,omitempty"`
	ErrorDetails string      `json:"error_details,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// Error codes returned in Response.ErrorCode.
const (
	ErrCodeValidation       = "validation_failed"
	ErrCodeDuplicateID      = "duplicate_id"
	ErrCodeNotFound         = "not_found"
	ErrCodeMissingField     = "missing_field"
	ErrCodePermissionDenied = "permission_denied"
	ErrCodeBusy             = "busy"
	ErrCodeBadRequest       = "bad_request"
)
