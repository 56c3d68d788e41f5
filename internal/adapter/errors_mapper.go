package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/go-resty/resty/v2"
)

// invalidCredentialsMessage is the body the server sends for a failed login.
const invalidCredentialsMessage = "Invalid credentials"

// mapHTTPError converts a non-2xx response into one of the package sentinels,
// keeping the server's {"message": ...} text as detail.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if message == invalidCredentialsMessage {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// responseMessage extracts the "message" field, falling back to the raw body
// and then to the status text.
func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var msg models.MessageResponse
	if err := json.Unmarshal([]byte(body), &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
