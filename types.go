package console

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Authenticator holds methods to deal with the login exchange
type Authenticator interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
}

// CredentialStore is the durable slot holding the raw credential string.
// Only the raw token is persisted; the session email is reconstructed as a
// placeholder on rehydration.
type CredentialStore interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}

// Config holds console options
type Config interface {
	GetBaseURL() string
	GetLoginPath() string
	GetAuthScheme() string
	GetLoginRoute() string
	GetLandingRoute() string
	GetCredentialKey() string
	GetRequestTimeout() time.Duration
	GetPollInterval() time.Duration
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] CONSOLE "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] CONSOLE "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] CONSOLE "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] CONSOLE "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
