package console

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeTokenMalformed  = "console_token_malformed"
	TextCodeSessionExpired  = "console_session_expired"
	TextCodeRequestFailed   = "console_request_failed"
	TextCodeLoginInvalid    = "console_login_invalid"
	TextCodeLoginSuperseded = "console_login_superseded"
	TextCodeNoSession       = "console_no_session"
	TextCodeCredentialVault = "console_credential_vault"
)

// ErrTokenMalformed is returned when a credential does not have the
// three-segment structure, the payload is not base64, or the decoded
// bytes are not JSON.
var ErrTokenMalformed = goerrors.New("credential is malformed", goerrors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(goerrors.CodeUnauthorized)

// ErrSessionExpired is returned when an authenticated request came back 401.
// Observing it means the session has already been cleared.
var ErrSessionExpired = goerrors.New("session expired", goerrors.CategoryAuth).
	WithTextCode(TextCodeSessionExpired).
	WithCode(goerrors.CodeUnauthorized)

// ErrRequestFailed is returned for network errors and non-401 HTTP failures.
// Callers decide whether to surface a retry control; no retry happens here.
var ErrRequestFailed = goerrors.New("request failed", goerrors.CategoryOperation).
	WithTextCode(TextCodeRequestFailed)

// ErrNoSession is returned when an authenticated request is attempted
// without an active session.
var ErrNoSession = goerrors.New("no active session", goerrors.CategoryAuth).
	WithTextCode(TextCodeNoSession).
	WithCode(goerrors.CodeUnauthorized)

// ErrLoginSuperseded is returned when a login resolved after a newer
// session-changing operation was applied; its result is discarded.
var ErrLoginSuperseded = goerrors.New("login superseded by a newer session operation", goerrors.CategoryConflict).
	WithTextCode(TextCodeLoginSuperseded).
	WithCode(goerrors.CodeConflict)

// IsDecodeError will check for malformed credentials
func IsDecodeError(err error) bool {
	return hasTextCode(err, TextCodeTokenMalformed)
}

// IsSessionExpiredError will check for 401-forced logouts
func IsSessionExpiredError(err error) bool {
	return hasTextCode(err, TextCodeSessionExpired)
}

// IsRequestFailedError will check for network or non-401 HTTP failures
func IsRequestFailedError(err error) bool {
	return hasTextCode(err, TextCodeRequestFailed)
}

// IsValidationError will check for local payload validation failures
func IsValidationError(err error) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.Category == goerrors.CategoryValidation
}

func hasTextCode(err error, textCode string) bool {
	if err == nil {
		return false
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == textCode
}
