package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes (and transport failures) so
// that callers can use [errors.Is] without knowing the wire protocol.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNetworkUnavailable wraps transport-level failures (DNS, refused
	// connection, timeout) where no HTTP response was received at all.
	// Callers must distinguish it from server rejections: an unreachable
	// server is not evidence of a wrong password or a missing resource.
	ErrNetworkUnavailable = errors.New("network unavailable")
)
