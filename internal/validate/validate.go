// Package validate performs the minimal shape check applied to user records
// arriving from the edit flow and from the remote listing API.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/EO-DataHub/eodhp-directory-services/models"
)

// ErrMalformed is wrapped by every ValidationError.
var ErrMalformed = errors.New("malformed user record")

// ValidationError names the field that failed the shape check.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrMalformed, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrMalformed, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrMalformed
}

type fields map[string]json.RawMessage

// UserRecord checks that raw exposes a numeric id, a string name, a string email
// and a company object with a string name. Optional string fields are copied
// when they hold strings and skipped otherwise.
func UserRecord(raw json.RawMessage) (models.UserRecord, error) {
	var rec models.UserRecord

	obj, err := object(raw, "record")
	if err != nil {
		return rec, err
	}
	if err := required(obj, "", &rec.ID, &rec.Name, &rec.Email, &rec.Company.Name); err != nil {
		return rec, err
	}

	optional(obj, "phone", &rec.Phone)
	optional(obj, "address", &rec.Address)
	optional(obj, "photo", &rec.Photo)
	optional(obj, "country", &rec.Country)
	optional(obj, "state", &rec.State)

	return rec, nil
}

// RemoteUsers decodes the remote listing body. Anything other than an array of
// well-shaped records is rejected.
func RemoteUsers(body []byte) ([]models.RemoteUserRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ValidationError{Reason: "response body is not an array"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("response body is not an array: %v", err)}
	}

	users := make([]models.RemoteUserRecord, 0, len(items))
	for i, item := range items {
		prefix := fmt.Sprintf("[%d].", i)
		obj, err := object(item, prefix)
		if err != nil {
			return nil, err
		}

		var u models.RemoteUserRecord
		if err := required(obj, prefix, &u.ID, &u.Name, &u.Email, &u.Company.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

func object(raw json.RawMessage, prefix string) (fields, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &ValidationError{Field: trimPrefix(prefix), Reason: "is missing"}
	}
	if trimmed[0] != '{' {
		return nil, &ValidationError{Field: trimPrefix(prefix), Reason: "is not an object"}
	}

	var obj fields
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, &ValidationError{Field: trimPrefix(prefix), Reason: "is not an object"}
	}
	return obj, nil
}

func required(obj fields, prefix string, id *int64, name, email, company *string) error {
	var err error
	if *id, err = integer(obj, prefix, "id"); err != nil {
		return err
	}
	if *name, err = str(obj, prefix, "name"); err != nil {
		return err
	}
	if *email, err = str(obj, prefix, "email"); err != nil {
		return err
	}

	companyObj, err := object(obj["company"], prefix+"company")
	if err != nil {
		return err
	}
	if *company, err = str(companyObj, prefix+"company.", "name"); err != nil {
		return err
	}
	return nil
}

func integer(obj fields, prefix, key string) (int64, error) {
	raw, ok := obj[key]
	if !ok {
		return 0, &ValidationError{Field: prefix + key, Reason: "is missing"}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, &ValidationError{Field: prefix + key, Reason: "is not a number"}
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, &ValidationError{Field: prefix + key, Reason: "is not a number"}
	}

	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	// float64(math.MaxInt64) rounds up to 2^63, so compare against the exact bound.
	if err != nil || f != math.Trunc(f) || f >= 0x1p63 || f < -0x1p63 {
		return 0, &ValidationError{Field: prefix + key, Reason: "is not an integer"}
	}
	return int64(f), nil
}

func str(obj fields, prefix, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", &ValidationError{Field: prefix + key, Reason: "is missing"}
	}
	s, ok := asString(raw)
	if !ok {
		return "", &ValidationError{Field: prefix + key, Reason: "is not a string"}
	}
	return s, nil
}

func optional(obj fields, key string, dst *string) {
	if s, ok := asString(obj[key]); ok {
		*dst = s
	}
}

// asString rejects null, which json.Unmarshal would otherwise accept into a string.
func asString(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}

func trimPrefix(prefix string) string {
	if n := len(prefix); n > 0 && prefix[n-1] == '.' {
		return prefix[:n-1]
	}
	return prefix
}
