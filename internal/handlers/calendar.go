package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomly-dev/roomly/db"
	"github.com/roomly-dev/roomly/internal/auth"
	"github.com/roomly-dev/roomly/internal/models"
	"github.com/roomly-dev/roomly/internal/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"gorm.io/datatypes"
)

// ListCalendars fetches the caller's Google calendar list using the
// credential cached at login. If the token source rotated the access
// token, the fresh credential is written back to the user row.
func ListCalendars(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, userID).Error; err != nil {
		logrus.WithError(err).Error("Failed to load user for calendar listing")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	if len(user.Tokens) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "missing provider credentials"})
		return
	}

	var cached models.ProviderTokens

	if err := json.Unmarshal(user.Tokens, &cached); err != nil {
		logrus.WithError(err).Error("Failed to decode cached provider tokens")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	cfg := auth.GoogleOAuthConfig()

	source := cfg.TokenSource(ctx.Request.Context(), &oauth2.Token{
		AccessToken:  cached.AccessToken,
		RefreshToken: cached.RefreshToken,
		TokenType:    cached.TokenType,
		Expiry:       cached.Expiry,
	})

	token, err := source.Token()

	if err != nil {
		logrus.WithError(err).Error("Failed to obtain provider access token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	if token.AccessToken != cached.AccessToken {
		persistRefreshedTokens(&user, cached, token)
	}

	service, err := calendar.NewService(ctx.Request.Context(),
		option.WithTokenSource(oauth2.StaticTokenSource(token)))

	if err != nil {
		logrus.WithError(err).Error("Failed to build calendar client")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	list, err := service.CalendarList.List().Do()

	if err != nil {
		logrus.WithError(err).Error("Calendar list request failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// A failed write only costs an extra refresh on the next call, so the
// request proceeds either way.
func persistRefreshedTokens(user *models.User, cached models.ProviderTokens, token *oauth2.Token) {
	cached.AccessToken = token.AccessToken
	cached.TokenType = token.TokenType
	cached.Expiry = token.Expiry

	if token.RefreshToken != "" {
		cached.RefreshToken = token.RefreshToken
	}

	encoded, err := json.Marshal(cached)

	if err != nil {
		logrus.WithError(err).Warn("Failed to encode refreshed provider tokens")
		return
	}

	err = db.DB.Model(user).Update("tokens", datatypes.JSON(encoded)).Error

	if err != nil {
		logrus.WithError(err).Warn("Failed to persist refreshed provider tokens")
	}
}
