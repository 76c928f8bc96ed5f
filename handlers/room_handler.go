package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/store"
)

type RoomHandler struct {
	rooms *store.RoomStore
}

func NewRoomHandler(rooms *store.RoomStore) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// roomPayload tolerates both body shapes the clients historically sent:
// {"room": name} and {"roomName": name}.
type roomPayload struct {
	Room     string `json:"room"`
	RoomName string `json:"roomName"`
}

func (p *roomPayload) name() string {
	if p.Room != "" {
		return p.Room
	}
	return p.RoomName
}

// List returns a bare array of room names.
func (h *RoomHandler) List(c echo.Context) error {
	names, err := h.rooms.ListRooms()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, names)
}

func (h *RoomHandler) Create(c echo.Context) error {
	var p roomPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	room, err := h.rooms.CreateRoom(p.name())
	if err != nil {
		return jsonError(c, err)
	}
	logMutation(c, "room created", room.Name)
	return c.JSON(http.StatusCreated, room)
}

// Delete removes the room and cascades to its notes. Unknown names are 404
// in registry mode only; in derived mode a room with no notes already does
// not exist, so the delete is a no-op.
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.rooms.DeleteRoom(c.Param("name")); err != nil {
		return jsonError(c, err)
	}
	logMutation(c, "room deleted", c.Param("name"))
	return c.NoContent(http.StatusNoContent)
}
