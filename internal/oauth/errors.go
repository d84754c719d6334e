package oauth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Error is an OAuth2 protocol failure carrying the wire error code, the
// AADSTS sub-code and the HTTP status the token endpoint should answer with.
type Error struct {
	Code        string // OAuth2 error code, e.g. "invalid_grant"
	SubCode     int    // AADSTS numeric code embedded in the description
	Description string
	Status      int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (AADSTS%d): %s", e.Code, e.SubCode, e.Description)
}

// ErrorEnvelope is the JSON body of a failed token-endpoint response,
// shaped like the Azure AD v2.0 error document.
type ErrorEnvelope struct {
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCodes       []int  `json:"error_codes"`
	Timestamp        string `json:"timestamp"`
	TraceID          string `json:"trace_id"`
	CorrelationID    string `json:"correlation_id"`
}

// Envelope renders the error into a wire document. A fresh trace id is minted
// per response; the correlation id is carried through from the request when
// the caller supplied one.
func (e *Error) Envelope(correlationID string) *ErrorEnvelope {
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	traceID := uuid.NewString()
	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05Z")
	return &ErrorEnvelope{
		ErrorCode: e.Code,
		ErrorDescription: fmt.Sprintf("AADSTS%d: %s Trace ID: %s Correlation ID: %s Timestamp: %s",
			e.SubCode, e.Description, traceID, correlationID, timestamp),
		ErrorCodes:    []int{e.SubCode},
		Timestamp:     timestamp,
		TraceID:       traceID,
		CorrelationID: correlationID,
	}
}

// MissingParameter reports a required request parameter that was absent.
func MissingParameter(name string) *Error {
	return &Error{
		Code:        "invalid_request",
		SubCode:     900144,
		Description: fmt.Sprintf("The request body must contain the following parameter: '%s'.", name),
		Status:      http.StatusBadRequest,
	}
}

// UnsupportedGrantType reports a grant_type outside the supported set.
func UnsupportedGrantType(grantType string) *Error {
	return &Error{
		Code:        "unsupported_grant_type",
		SubCode:     70003,
		Description: fmt.Sprintf("The provided grant type '%s' is not supported.", grantType),
		Status:      http.StatusBadRequest,
	}
}

// UnsupportedResponseType reports a response_type other than "code".
func UnsupportedResponseType(responseType string) *Error {
	return &Error{
		Code:        "unsupported_response_type",
		SubCode:     700054,
		Description: fmt.Sprintf("response_type '%s' is not enabled for the application.", responseType),
		Status:      http.StatusBadRequest,
	}
}

// InvalidGrant reports an authorization code or refresh token that is
// unknown, already redeemed or expired. All three cases are deliberately
// indistinguishable on the wire.
func InvalidGrant() *Error {
	return &Error{
		Code:        "invalid_grant",
		SubCode:     70008,
		Description: "The provided authorization code or refresh token has expired or has already been redeemed.",
		Status:      http.StatusBadRequest,
	}
}

// PKCEMismatch reports a code_verifier that does not match the recorded
// code_challenge.
func PKCEMismatch() *Error {
	return &Error{
		Code:        "invalid_grant",
		SubCode:     501481,
		Description: "The Code_Verifier does not match the code_challenge supplied in the authorization request.",
		Status:      http.StatusBadRequest,
	}
}

// InvalidClient reports missing or malformed client authentication.
func InvalidClient(description string) *Error {
	return &Error{
		Code:        "invalid_client",
		SubCode:     7000218,
		Description: description,
		Status:      http.StatusUnauthorized,
	}
}

// InvalidToken reports a bearer token that failed validation.
func InvalidToken(description string) *Error {
	return &Error{
		Code:        "invalid_token",
		SubCode:     500133,
		Description: description,
		Status:      http.StatusUnauthorized,
	}
}

// ServerError reports an unexpected internal failure.
func ServerError() *Error {
	return &Error{
		Code:        "server_error",
		SubCode:     50000,
		Description: "There was an error processing the request.",
		Status:      http.StatusInternalServerError,
	}
}
