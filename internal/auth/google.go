package auth

import (
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes requested during the OAuth2 consent flow. Calendar access is
// needed for the calendar passthrough endpoint.
var Scopes = []string{
	"profile",
	"email",
	"https://www.googleapis.com/auth/calendar",
}

// GoogleOAuthConfig builds the OAuth2 client configuration from the
// environment. Called per request so tests can point it elsewhere.
func GoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes:       Scopes,
		Endpoint:     google.Endpoint,
	}
}
