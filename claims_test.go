package console_test

import (
	"encoding/base64"
	"testing"

	"github.com/goliatone/go-console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeToken(t *testing.T) {
	t.Run("round-trips minted credentials", func(t *testing.T) {
		token := mintToken(t, "D42", "doctor")

		claims, err := console.DecodeToken(token)
		require.NoError(t, err)

		assert.Equal(t, "D42", claims.UserID())
		assert.Equal(t, "doctor", claims.Role())
	})

	t.Run("decodes a hand-built payload segment", func(t *testing.T) {
		payload := base64.RawURLEncoding.EncodeToString([]byte(`{"id":"D42","role":"doctor"}`))
		token := "header." + payload + ".sig"

		claims, err := console.DecodeToken(token)
		require.NoError(t, err)

		assert.Equal(t, "D42", claims.UserID())
		assert.Equal(t, "doctor", claims.Role())
	})

	t.Run("falls back to the subject claim for the user ID", func(t *testing.T) {
		payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"D77","role":"admin"}`))

		claims, err := console.DecodeToken("h." + payload + ".s")
		require.NoError(t, err)

		assert.Equal(t, "D77", claims.UserID())
	})

	t.Run("accepts the standard base64 alphabet with padding", func(t *testing.T) {
		raw := `{"id":"D42","role":"doctor","bio":"a>?b~~zz>>??"}`
		payload := base64.StdEncoding.EncodeToString([]byte(raw))

		claims, err := console.DecodeToken("header." + payload + ".sig")
		require.NoError(t, err)

		assert.Equal(t, "D42", claims.UserID())
		assert.Equal(t, "doctor", claims.Role())
	})

	t.Run("handles multi-byte UTF-8 claim values", func(t *testing.T) {
		payload := base64.RawURLEncoding.EncodeToString([]byte(`{"id":"D42","role":"médecin généraliste"}`))

		claims, err := console.DecodeToken("h." + payload + ".s")
		require.NoError(t, err)

		assert.Equal(t, "médecin généraliste", claims.Role())
	})
}

func TestDecodeTokenMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"single segment", "nodots"},
		{"two segments", "a.b"},
		{"four segments", "a.b.c.d"},
		{"non-base64 middle segment", "a.!!!not-base64!!!.c"},
		{"non-JSON payload", "a." + base64.RawURLEncoding.EncodeToString([]byte("plain text")) + ".c"},
		{"JSON scalar payload", "a." + base64.RawURLEncoding.EncodeToString([]byte(`"just a string"`)) + ".c"},
		{"invalid UTF-8 payload", "a." + base64.RawURLEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}) + ".c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := console.DecodeToken(tc.raw)

			require.Error(t, err)
			assert.Nil(t, claims)
			assert.True(t, console.IsDecodeError(err))
		})
	}
}
