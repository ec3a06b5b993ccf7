package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/roomly-dev/roomly/db"
	"github.com/roomly-dev/roomly/internal/auth"
	"github.com/roomly-dev/roomly/internal/models"
	"github.com/roomly-dev/roomly/internal/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// ExpiresIn echoes the token lifetime to clients, in seconds.
var ExpiresIn = int(auth.TokenValidity.Seconds())

type ExchangeRequest struct {
	AuthorizationCode string `json:"authorization_code"`
}

type NameResponse struct {
	DisplayName string `json:"displayName"`
	FamilyName  string `json:"familyName"`
	GivenName   string `json:"givenName"`
}

type SessionUserResponse struct {
	Email         string       `json:"email"`
	Name          NameResponse `json:"name"`
	ProfileImgURL string       `json:"profileImgUrl"`
	Token         string       `json:"token"`
}

// GetAuthURL starts the OAuth2 workflow: the client opens the returned
// URL, consents, and comes back with an authorization code.
func GetAuthURL(ctx *gin.Context) {
	cfg := auth.GoogleOAuthConfig()

	url := cfg.AuthCodeURL(uuid.NewString(), oauth2.AccessTypeOffline)

	ctx.JSON(http.StatusOK, gin.H{"url": url})
}

// ExchangeAuthorization trades a one-time authorization code for Google
// tokens, upserts the user keyed on the Google account id, and issues a
// fresh bearer token.
func ExchangeAuthorization(ctx *gin.Context) {
	var body ExchangeRequest

	_ = ctx.ShouldBindJSON(&body)

	if body.AuthorizationCode == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "missing authorization code"})
		return
	}

	cfg := auth.GoogleOAuthConfig()

	token, err := cfg.Exchange(ctx.Request.Context(), body.AuthorizationCode)

	if err != nil {
		logrus.WithError(err).Error("Authorization code exchange failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)

	if !ok {
		logrus.Error("Token response carried no id_token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	payload, err := idtoken.Validate(ctx.Request.Context(), rawIDToken, cfg.ClientID)

	if err != nil {
		logrus.WithError(err).Error("ID token verification failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	scope, _ := token.Extra("scope").(string)

	tokensJSON, err := json.Marshal(models.ProviderTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Scope:        scope,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	})

	if err != nil {
		logrus.WithError(err).Error("Failed to encode provider tokens")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	// Every login overwrites the cached profile and credential, so the
	// assignment is a column map rather than a struct (zero values must
	// overwrite too).
	update := map[string]interface{}{
		"display_name":    stringClaim(payload.Claims, "name"),
		"given_name":      stringClaim(payload.Claims, "given_name"),
		"family_name":     stringClaim(payload.Claims, "family_name"),
		"profile_img_url": stringClaim(payload.Claims, "picture"),
		"email":           stringClaim(payload.Claims, "email"),
		"email_verified":  boolClaim(payload.Claims, "email_verified"),
		"tokens":          tokensJSON,
	}

	var user models.User

	err = db.DB.Where(models.User{GoogleID: payload.Subject}).
		Assign(update).
		FirstOrCreate(&user).Error

	if err != nil {
		logrus.WithError(err).Error("Failed to upsert user on login")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	signed, err := auth.GenerateToken(user.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to sign bearer token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"expiresIn": ExpiresIn,
		"user": SessionUserResponse{
			Email: user.Email,
			Name: NameResponse{
				DisplayName: user.DisplayName,
				FamilyName:  user.FamilyName,
				GivenName:   user.GivenName,
			},
			ProfileImgURL: user.ProfileImgURL,
			Token:         signed,
		},
	})
}

// AuthStatus reloads the gate-verified caller and reissues a fresh token.
func AuthStatus(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "user does not exist"})
			return
		}
		logrus.WithError(err).Error("Failed to load user for auth status")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	signed, err := auth.GenerateToken(user.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to sign bearer token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"expiresIn": ExpiresIn,
		"user": SessionUserResponse{
			Email: user.Email,
			Name: NameResponse{
				DisplayName: user.DisplayName,
				FamilyName:  user.FamilyName,
				GivenName:   user.GivenName,
			},
			ProfileImgURL: user.ProfileImgURL,
			Token:         signed,
		},
	})
}

func stringClaim(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func boolClaim(claims map[string]interface{}, key string) bool {
	if v, ok := claims[key].(bool); ok {
		return v
	}
	return false
}
