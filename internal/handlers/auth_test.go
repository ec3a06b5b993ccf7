package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/auth", GetAuthURL)
	r.POST("/api/auth", ExchangeAuthorization)
	return r
}

func TestGetAuthURL(t *testing.T) {
	setupTestDB(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_REDIRECT_URL", "http://localhost:4200/callback")

	w := performJSON(newAuthRouter(), http.MethodGet, "/api/auth", "")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	parsed, err := url.Parse(body.URL)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:4200/callback", query.Get("redirect_uri"))
	assert.Equal(t, "offline", query.Get("access_type"))
	assert.Contains(t, query.Get("scope"), "https://www.googleapis.com/auth/calendar")
	assert.NotEmpty(t, query.Get("state"))
}

func TestExchangeAuthorizationMissingCode(t *testing.T) {
	setupTestDB(t)

	for _, body := range []string{`{}`, `{"authorization_code": ""}`, ``} {
		w := performJSON(newAuthRouter(), http.MethodPost, "/api/auth", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing authorization code")
	}
}
