package handlers

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/roomly-dev/roomly/db"
	"github.com/roomly-dev/roomly/internal/middleware"
	"github.com/roomly-dev/roomly/internal/models"
	"github.com/roomly-dev/roomly/internal/types"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "roomly.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(&models.User{}, &models.Room{}, &models.Invite{}))

	db.DB = conn
}

func createTestUser(t *testing.T, name, email string) models.User {
	t.Helper()

	user := models.User{
		DisplayName: name,
		GoogleID:    fmt.Sprintf("google-%s", email),
		Email:       email,
	}
	require.NoError(t, db.DB.Create(&user).Error)

	return user
}

// newAuthedRouter wires the handlers under test behind a stub gate that
// injects the given caller, so requests exercise the handlers' own
// loading and authorization logic.
func newAuthedRouter(caller models.User) *gin.Engine {
	r := gin.New()

	r.Use(func(ctx *gin.Context) {
		ctx.Set(types.ContextUserKey, middleware.AuthenticatedUser{
			ID:    caller.ID,
			Name:  caller.DisplayName,
			Email: caller.Email,
		})
	})

	r.POST("/api/rooms", CreateRoom)
	r.GET("/api/rooms", ListRooms)
	r.POST("/api/invites", CreateInvite)
	r.PUT("/api/invites/:inviteId", UpdateInviteStatus)
	r.GET("/api/users/:userId", GetUser)

	return r
}

func performJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	return w
}

func roomMemberCount(t *testing.T, roomID uint) int {
	t.Helper()

	var room models.Room
	require.NoError(t, db.DB.Preload("Members").First(&room, roomID).Error)

	return len(room.Members)
}
