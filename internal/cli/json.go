package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rileyhilliard/nodewatch/internal/errors"
)

// Machine mode flag - when true, outputs JSON and suppresses human-friendly decorations
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeSSHFailed      = "SSH_CONNECTION_FAILED"
	ErrCodeProbeFailed    = "PROBE_FAILED"
	ErrCodeMetricsFailed  = "METRICS_FAILED"
	ErrCodeAlertFailed    = "ALERT_DELIVERY_FAILED"
	ErrCodeStorageFailed  = "STORAGE_FAILED"
	ErrCodeUnknown        = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if nwErr, ok := err.(*errors.Error); ok {
		return &JSONError{
			Code:       mapErrorCode(nwErr.Code, nwErr.Message),
			Message:    nwErr.Message,
			Suggestion: nwErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	switch internalCode {
	case errors.ErrConfig:
		if strings.Contains(strings.ToLower(message), "not found") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrNotFound:
		return ErrCodeNotFound
	case errors.ErrSSH:
		return ErrCodeSSHFailed
	case errors.ErrProbe:
		return ErrCodeProbeFailed
	case errors.ErrMetrics:
		return ErrCodeMetricsFailed
	case errors.ErrAlert:
		return ErrCodeAlertFailed
	case errors.ErrStorage:
		return ErrCodeStorageFailed
	}
	return ErrCodeUnknown
}
