package console_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-console"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test-signing-key"

// mintToken signs a credential the way the identity endpoint would. The
// console never verifies the signature, but tests mint real tokens so the
// round-trip matches production traffic.
func mintToken(t *testing.T, id, role string) string {
	t.Helper()

	claims := &console.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: id,
		},
		UID:      id,
		UserRole: role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return token
}

// MockCredentialStore implements console.CredentialStore
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Read(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialStore) Write(ctx context.Context, credential string) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockCredentialStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// funcCredentialStore lets a test observe store state mid-operation.
type funcCredentialStore struct {
	read  func(ctx context.Context) (string, error)
	write func(ctx context.Context, credential string) error
	clear func(ctx context.Context) error
}

func (f *funcCredentialStore) Read(ctx context.Context) (string, error) {
	if f.read == nil {
		return "", nil
	}
	return f.read(ctx)
}

func (f *funcCredentialStore) Write(ctx context.Context, credential string) error {
	if f.write == nil {
		return nil
	}
	return f.write(ctx, credential)
}

func (f *funcCredentialStore) Clear(ctx context.Context) error {
	if f.clear == nil {
		return nil
	}
	return f.clear(ctx)
}
