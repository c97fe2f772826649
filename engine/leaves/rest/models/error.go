package models

// machine-readable error codes carried in the response body. TooManyLeaves
// and its MaxRange512 data preserve the wire contract of the original
// deployment.
const (
	CodeInvalidRequest = "InvalidRequest"
	CodeInvalidRange   = "InvalidRange"
	CodeTooManyLeaves  = "TooManyLeaves"
	CodeNotFound       = "NotFound"
	CodeUnavailable    = "Unavailable"
	CodeInternal       = "Internal"

	DataMaxRange = "MaxRange512"
)

// Error is the structured error returned to clients.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}
