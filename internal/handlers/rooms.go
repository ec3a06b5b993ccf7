package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roomly-dev/roomly/db"
	"github.com/roomly-dev/roomly/internal/models"
	"github.com/roomly-dev/roomly/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateRoomRequest struct {
	Name string `json:"name"`
}

type RoomResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Owner     uint      `json:"owner"`
	Members   []uint    `json:"members"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateRoom makes the caller the owner and sole initial member of a new
// room. A given owner cannot hold two rooms with the same slug.
func CreateRoom(ctx *gin.Context) {
	var body CreateRoomRequest

	_ = ctx.ShouldBindJSON(&body)

	if body.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "missing required parameters"})
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
		logrus.WithError(err).Error("Failed to load user for room creation")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	slug := utils.Slugify(body.Name)

	var existing int64

	err = db.DB.Model(&models.Room{}).
		Where("owner_id = ? AND slug = ?", user.ID, slug).
		Count(&existing).Error

	if err != nil {
		logrus.WithError(err).Error("Failed to check for duplicate room slug")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	if existing != 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "room with this name already exists"})
		return
	}

	room := models.Room{
		Name:    body.Name,
		Slug:    slug,
		OwnerID: user.ID,
		Members: []models.User{user},
	}

	if err := db.DB.Create(&room).Error; err != nil {
		logrus.WithError(err).Error("Failed to create room")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"name":    room.Name,
		"slug":    room.Slug,
		"owner":   room.OwnerID,
		"members": memberIDs(room.Members),
	})
}

// ListRooms returns every room whose member set contains the caller.
func ListRooms(ctx *gin.Context) {
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
		logrus.WithError(err).Error("Failed to load user for room listing")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	var rooms []models.Room

	err = db.DB.Preload("Members").
		Joins("JOIN room_members rm ON rm.room_id = rooms.id").
		Where("rm.user_id = ?", user.ID).
		Find(&rooms).Error

	if err != nil {
		logrus.WithError(err).Error("Failed to list rooms")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong on the server"})
		return
	}

	response := make([]RoomResponse, 0, len(rooms))

	for _, room := range rooms {
		response = append(response, RoomResponse{
			ID:        room.ID,
			Name:      room.Name,
			Slug:      room.Slug,
			Owner:     room.OwnerID,
			Members:   memberIDs(room.Members),
			CreatedAt: room.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"rooms": response})
}

func memberIDs(members []models.User) []uint {
	ids := make([]uint, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.ID)
	}
	return ids
}
