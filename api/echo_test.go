// Package api
package api

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedRequest(t *testing.T, priv ed25519.PrivateKey, body string) *http.Request {
	t.Helper()
	timestamp := "1714564800"
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(body))
	req.Header.Set("X-Signature-Timestamp", timestamp)
	req.Header.Set("X-Signature-Ed25519",
		hex.EncodeToString(ed25519.Sign(priv, []byte(timestamp+body))))
	return req
}

func TestVerifySignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	verify, err := VerifySignature(hex.EncodeToString(pub))
	require.NoError(t, err)

	called := false
	handler := verify(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	body := `{"type":1}`
	rec := httptest.NewRecorder()
	c := e.NewContext(signedRequest(t, priv, body), rec)

	require.NoError(t, handler(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifySignature_BadSignature(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	_, wrongPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	verify, err := VerifySignature(hex.EncodeToString(pub))
	require.NoError(t, err)

	called := false
	handler := verify(func(c echo.Context) error {
		called = true
		return nil
	})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(signedRequest(t, wrongPriv, `{"type":1}`), rec)

	require.NoError(t, handler(c))
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifySignature_MissingHeaders(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	verify, err := VerifySignature(hex.EncodeToString(pub))
	require.NoError(t, err)

	handler := verify(func(c echo.Context) error { return nil })

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(`{"type":1}`))
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifySignature_BadKeyMaterial(t *testing.T) {
	_, err := VerifySignature("not-hex")
	require.Error(t, err)

	_, err = VerifySignature("abcd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}
