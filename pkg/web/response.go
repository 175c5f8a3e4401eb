// Package web defines common components for a web application.
package web

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken           string    `json:"access_token,omitempty"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at,omitempty"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
	Data                  any       `json:"data,omitempty"`
	Error                 string    `json:"error,omitempty"`
}

// GetErrorMsg returns a readable message for the first failed validation.
func GetErrorMsg(ve validator.ValidationErrors) string {
	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " is required"
	case "email":
		return field.Field() + " must be a valid email"
	case "min":
		return field.Field() + " must be at least " + field.Param() + " characters long"
	case "gt":
		return field.Field() + " must be greater than " + field.Param()
	case "lte":
		return field.Field() + " must be less than or equal to " + field.Param()
	case "gte":
		return field.Field() + " must be greater than or equal to " + field.Param()
	case "oneof":
		return field.Field() + " must be one of: " + field.Param()
	case "symbol":
		return field.Field() + " is not a supported asset symbol"
	case "location":
		return field.Field() + " is not a supported proxy location"
	}

	return field.Field() + " is invalid"
}
