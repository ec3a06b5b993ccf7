package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetUserID(ctx *gin.Context) (uint64, error) {
	userIDStr := ctx.Param("userId")

	if userIDStr == "" {
		return 0, errors.New("User ID not found")
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid User ID")
	}

	return userID, nil
}

func GetInviteID(ctx *gin.Context) (uint64, error) {
	inviteIDStr := ctx.Param("inviteId")

	if inviteIDStr == "" {
		return 0, errors.New("Invite ID not found")
	}

	inviteID, err := strconv.ParseUint(inviteIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Invite ID")
	}

	return inviteID, nil
}
