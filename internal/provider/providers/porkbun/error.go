package porkbun

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/qdm12/dynners/internal/provider/errors"
)

// makeError returns an error for a response with an error status.
// Client errors carry a JSON message and server errors only
// carry the status code.
func makeError(statusCode int, body []byte) error {
	if statusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %d", errors.ErrBadHTTPStatus, statusCode)
	}

	var errorResponse struct {
		Message *string `json:"message"`
	}
	err := json.Unmarshal(body, &errorResponse)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnmarshalResponse, err)
	}

	message := "(null)"
	if errorResponse.Message != nil {
		message = *errorResponse.Message
	}
	return fmt.Errorf("%w: %d: %s", errors.ErrBadHTTPStatus, statusCode, message)
}
