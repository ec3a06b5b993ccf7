package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomly-dev/roomly/db"
	"github.com/roomly-dev/roomly/internal/models"
	"github.com/roomly-dev/roomly/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserResponse struct {
	ID            uint         `json:"id"`
	Name          NameResponse `json:"name"`
	GoogleID      string       `json:"googleId"`
	ProfileImgURL string       `json:"profileImgUrl"`
	Email         string       `json:"email"`
	Invites       []uint       `json:"invites"`
}

// GetUser exposes a profile to its own user only; any other caller gets 401.
func GetUser(ctx *gin.Context) {
	targetID, err := utils.GetUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "missing user id"})
		return
	}

	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "missing user id"})
		return
	}

	var user models.User

	if err := db.DB.Preload("Invites").First(&user, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "user does not exist"})
			return
		}
		logrus.WithError(err).Error("Failed to load user profile")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	if user.ID != caller.ID {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized to access this user"})
		return
	}

	inviteIDs := make([]uint, 0, len(user.Invites))

	for _, invite := range user.Invites {
		inviteIDs = append(inviteIDs, invite.ID)
	}

	ctx.JSON(http.StatusOK, UserResponse{
		ID: user.ID,
		Name: NameResponse{
			DisplayName: user.DisplayName,
			FamilyName:  user.FamilyName,
			GivenName:   user.GivenName,
		},
		GoogleID:      user.GoogleID,
		ProfileImgURL: user.ProfileImgURL,
		Email:         user.Email,
		Invites:       inviteIDs,
	})
}
