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

type CreateInviteRequest struct {
	Room uint `json:"room"`
	To   uint `json:"to"`
}

type UpdateInviteRequest struct {
	Status string `json:"status"`
}

// CreateInvite lets a room owner offer membership to another user. One
// invite per (sender, room) pair may ever exist on a recipient; the scan
// deliberately ignores the status of earlier invites, so a resolved one
// still blocks a retry.
func CreateInvite(ctx *gin.Context) {
	var body CreateInviteRequest

	_ = ctx.ShouldBindJSON(&body)

	if body.Room == 0 || body.To == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "missing required parameters"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	var from models.User

	if err := db.DB.First(&from, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "user does not exist"})
			return
		}
		logrus.WithError(err).Error("Failed to load sender for invite")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	var to models.User

	if err := db.DB.Preload("Invites").First(&to, body.To).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "user does not exist"})
			return
		}
		logrus.WithError(err).Error("Failed to load recipient for invite")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	var room models.Room

	if err := db.DB.First(&room, body.Room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "room does not exist"})
			return
		}
		logrus.WithError(err).Error("Failed to load room for invite")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	if room.OwnerID != from.ID {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized to send invites"})
		return
	}

	for _, invite := range to.Invites {
		if invite.FromID == from.ID && invite.RoomID == room.ID {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "invite already exists"})
			return
		}
	}

	invite := models.Invite{
		FromID: from.ID,
		ToID:   to.ID,
		RoomID: room.ID,
		Status: models.InviteStatusPending,
	}

	if err := db.DB.Create(&invite).Error; err != nil {
		logrus.WithError(err).Error("Failed to create invite")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{})
}

// UpdateInviteStatus lets the recipient resolve an invite. Accepting
// also adds the recipient to the room's member set; both writes commit
// in one transaction.
func UpdateInviteStatus(ctx *gin.Context) {
	inviteID, err := utils.GetInviteID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "missing required parameters"})
		return
	}

	var body UpdateInviteRequest

	_ = ctx.ShouldBindJSON(&body)

	if body.Status == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "missing required parameters"})
		return
	}

	status, ok := models.ParseInviteStatus(body.Status)

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid status"})
		return
	}

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
		logrus.WithError(err).Error("Failed to load user for invite update")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	var invite models.Invite

	if err := db.DB.First(&invite, inviteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "invite does not exist"})
			return
		}
		logrus.WithError(err).Error("Failed to load invite")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	if invite.ToID != user.ID {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized to update this invite"})
		return
	}

	if invite.Status == status {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "status already set"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if status == models.InviteStatusAccepted {
			var room models.Room

			if err := tx.First(&room, invite.RoomID).Error; err != nil {
				return err
			}

			if err := tx.Model(&room).Association("Members").Append(&user); err != nil {
				return err
			}
		}

		invite.Status = status
		return tx.Save(&invite).Error
	})

	if err != nil {
		logrus.WithError(err).Error("Failed to apply invite transition")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}
