package apperr

import (
	"io"

	go_json "github.com/goccy/go-json"
)

type errorResponse struct {
	Error   string            `json:"error"`
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// WriteJSON encodes err for commands running with --json. Errors that are not
// an *Error are reported as internal without leaking their text.
func WriteJSON(w io.Writer, err error) error {
	appErr := AsError(err)
	if appErr == nil {
		appErr = Internal("internal_error", "an unexpected error occurred", err)
	}
	return go_json.NewEncoder(w).Encode(errorResponse{
		Error:   appErr.Code,
		Kind:    appErr.Kind.String(),
		Message: appErr.Message,
		Fields:  appErr.Fields,
	})
}
