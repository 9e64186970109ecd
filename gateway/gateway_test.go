package gateway_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gitpulse/gitpulse-go/gateway"
)

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := gateway.New("  ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "base URL is required")
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := gateway.New("http://localhost:3000/api/")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3000/api", c.BaseURL())
}

func TestClient_SendsJSONContentType(t *testing.T) {
	var contentType string
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c, err := gateway.New(server.URL)
	require.NoError(t, err)

	resp, err := c.Post(context.Background(), "/auth/login", map[string]string{"email": "user@example.com"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, "application/json", contentType)
	require.Equal(t, "user@example.com", received["email"])
}

func TestClient_CookiePersistsAcrossRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "gitpulse_session", Value: "abc123", Path: "/"})
			w.WriteHeader(http.StatusOK)
		case "/auth/me":
			cookie, err := r.Cookie("gitpulse_session")
			if err != nil || cookie.Value != "abc123" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	c, err := gateway.New(server.URL)
	require.NoError(t, err)

	_, err = c.Post(context.Background(), "/auth/login", nil)
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), "/auth/me")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status, "session cookie must ride along automatically")
}

func TestClient_UnauthorizedIsReturnedNotSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	c, err := gateway.New(server.URL, gateway.WithLogger(log))
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), "/manager/team")
	require.NoError(t, err, "a 401 is a completed exchange, not a transport error")
	require.True(t, resp.Unauthorized())
	require.JSONEq(t, `{"success":false}`, string(resp.Body))
	require.Contains(t, buf.String(), "unauthorized response")
}

func TestClient_DevLoggingEmitsRequestAndResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	c, err := gateway.New(server.URL, gateway.WithLogger(log), gateway.WithDevLogging(true))
	require.NoError(t, err)

	_, err = c.Put(context.Background(), "/auth/update-profile", map[string]string{"name": "Priya"})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "api request")
	require.Contains(t, buf.String(), "api response")
}

func TestClient_DevLoggingOffByDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	c, err := gateway.New(server.URL, gateway.WithLogger(log))
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/auth/me")
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func TestClient_NetworkErrorIsWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	c, err := gateway.New(server.URL)
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/auth/me")
	require.Error(t, err)
	require.Contains(t, err.Error(), "[Client.do]")
}
