package http

import (
	"encoding/json"
	"net/http"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

// Envelope is the uniform response wrapper carried by every endpoint,
// success or failure. Data is null on failure; Message is null on success.
type Envelope[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data"`
	Message *string `json:"message"`
}

// OK wraps a successful payload.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: &data}
}

// Fail wraps a failure message with a null payload.
func Fail(message string) Envelope[struct{}] {
	return Envelope[struct{}]{Success: false, Message: &message}
}

// respond writes a success envelope.
func respond[T any](w http.ResponseWriter, data T) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(OK(data))
}

// errorStatus maps application error codes to HTTP status codes.
func errorStatus(code string) int {
	switch code {
	case cmdlib.EINVALID:
		return http.StatusBadRequest
	case cmdlib.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a failure envelope. Storage and internal errors are
// logged with full detail but surface only a generic message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := cmdlib.ErrorCode(err)
	message := cmdlib.ErrorMessage(err)

	switch code {
	case cmdlib.EINVALID, cmdlib.ENOTFOUND:
		// client errors pass their message through
	case cmdlib.EUNAVAILABLE:
		s.Logger.Error("storage error", "path", r.URL.Path, "error", err)
		message = "Storage unavailable."
	default:
		s.Logger.Error("internal error", "path", r.URL.Path, "error", err)
		message = "Internal server error."
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(errorStatus(code))
	json.NewEncoder(w).Encode(Fail(message))
}
