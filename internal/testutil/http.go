package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harentsoaR/stayvista-api/internal/middleware"
	"github.com/harentsoaR/stayvista-api/internal/utils"
)

const TokenSecret = "test-secret"

// Tokens returns the token manager tests sign cookies with.
func Tokens() *utils.TokenManager {
	return utils.NewTokenManager(TokenSecret, utils.TokenTTL)
}

// AuthCookie returns a valid auth cookie for email.
func AuthCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	token, err := Tokens().GenerateJWT(email, "")
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return &http.Cookie{Name: middleware.TokenCookie, Value: token}
}

// NewRequest builds a request with an optional JSON body and cookie.
func NewRequest(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

// Serve runs req through h and returns the recorder.
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals the recorder body into v.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response %q: %v", rec.Body.String(), err)
	}
}
