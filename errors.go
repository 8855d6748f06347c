package knowshowgo

import "fmt"

// APIError is returned when the service answers with a status outside the
// 2xx range. It carries the HTTP status and the decoded response payload;
// use errors.As to get at them.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Body is the decoded response payload.
	Body Body
	// Message is the body's "error" field when present, otherwise a
	// synthesized description of the failed request.
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(method, path string, status int, body Body) *APIError {
	message := ""
	if obj, ok := body.Object(); ok {
		if s, ok := obj["error"].(string); ok && s != "" {
			message = s
		}
	}
	if message == "" {
		message = fmt.Sprintf("Request failed: %s %s (%d)", method, path, status)
	}

	return &APIError{
		Status:  status,
		Body:    body,
		Message: message,
	}
}
