package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyQuery is returned by Search before any network call when the
// query is blank.
var ErrEmptyQuery = errors.New("search query is empty")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Error
	}
	return apiErr
}

func isStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool { return isStatus(err, http.StatusNotFound) }

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool { return isStatus(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is a 403 response.
func IsForbidden(err error) bool { return isStatus(err, http.StatusForbidden) }

// IsInvalidArgument reports whether err is a 400 response.
func IsInvalidArgument(err error) bool { return isStatus(err, http.StatusBadRequest) }

// IsConflict reports whether err is a 409 response.
func IsConflict(err error) bool { return isStatus(err, http.StatusConflict) }
