package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/roomly-dev/roomly/db"
	"github.com/roomly-dev/roomly/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoom(t *testing.T) {
	setupTestDB(t)
	joe := createTestUser(t, "Joe Schmoe", "joe@example.com")
	r := newAuthedRouter(joe)

	w := performJSON(r, http.MethodPost, "/api/rooms", `{"name": "joe's room"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Name    string `json:"name"`
		Slug    string `json:"slug"`
		Owner   uint   `json:"owner"`
		Members []uint `json:"members"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "joe's room", body.Name)
	assert.Equal(t, "joes-room", body.Slug)
	assert.Equal(t, joe.ID, body.Owner)
	assert.Equal(t, []uint{joe.ID}, body.Members)

	var room models.Room
	require.NoError(t, db.DB.Preload("Members").Where("slug = ?", "joes-room").First(&room).Error)
	assert.Equal(t, joe.ID, room.OwnerID)
	require.Len(t, room.Members, 1)
	assert.Equal(t, joe.ID, room.Members[0].ID)
}

func TestCreateRoomDuplicateSlug(t *testing.T) {
	setupTestDB(t)
	joe := createTestUser(t, "Joe Schmoe", "joe@example.com")
	r := newAuthedRouter(joe)

	w := performJSON(r, http.MethodPost, "/api/rooms", `{"name": "joe's room"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// "joes room" collides with "joe's room" once punctuation is stripped.
	w = performJSON(r, http.MethodPost, "/api/rooms", `{"name": "joes room"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "room with this name already exists")
}

func TestCreateRoomSameSlugDifferentOwner(t *testing.T) {
	setupTestDB(t)
	joe := createTestUser(t, "Joe Schmoe", "joe@example.com")
	sally := createTestUser(t, "Sally Schmoe", "sally@example.com")

	w := performJSON(newAuthedRouter(joe), http.MethodPost, "/api/rooms", `{"name": "standup"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(newAuthedRouter(sally), http.MethodPost, "/api/rooms", `{"name": "standup"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateRoomMissingName(t *testing.T) {
	setupTestDB(t)
	joe := createTestUser(t, "Joe Schmoe", "joe@example.com")
	r := newAuthedRouter(joe)

	for _, body := range []string{`{}`, `{"name": ""}`, ``} {
		w := performJSON(r, http.MethodPost, "/api/rooms", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing required parameters")
	}
}

func TestCreateRoomCallerMissing(t *testing.T) {
	setupTestDB(t)

	ghost := models.User{}
	ghost.ID = 999
	w := performJSON(newAuthedRouter(ghost), http.MethodPost, "/api/rooms", `{"name": "a room"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user does not exist")
}

func TestListRooms(t *testing.T) {
	setupTestDB(t)
	joe := createTestUser(t, "Joe Schmoe", "joe@example.com")
	sally := createTestUser(t, "Sally Schmoe", "sally@example.com")

	require.NoError(t, db.DB.Create(&models.Room{
		Name: "joe's room", Slug: "joes-room", OwnerID: joe.ID,
		Members: []models.User{joe, sally},
	}).Error)
	require.NoError(t, db.DB.Create(&models.Room{
		Name: "sally's room", Slug: "sallys-room", OwnerID: sally.ID,
		Members: []models.User{sally},
	}).Error)

	w := performJSON(newAuthedRouter(joe), http.MethodGet, "/api/rooms", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Rooms []RoomResponse `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, "joes-room", body.Rooms[0].Slug)
	assert.ElementsMatch(t, []uint{joe.ID, sally.ID}, body.Rooms[0].Members)

	// Sally is a member of both.
	w = performJSON(newAuthedRouter(sally), http.MethodGet, "/api/rooms", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Rooms, 2)
}
