package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/store"
)

type NoteHandler struct {
	notes *store.NoteStore
}

func NewNoteHandler(notes *store.NoteStore) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// List returns the notes of one room, ?room= defaulting to Sala1.
func (h *NoteHandler) List(c echo.Context) error {
	notes, err := h.notes.ListNotes(c.QueryParam("room"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) Create(c echo.Context) error {
	var fields store.NoteFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	note, err := h.notes.CreateNote(fields)
	if err != nil {
		return jsonError(c, err)
	}
	logMutation(c, "note created", fmt.Sprintf("%s/%d", note.Room, note.ID))
	return c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) Update(c echo.Context) error {
	var fields store.NoteFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	note, err := h.notes.UpdateNote(parseID(c.Param("id")), fields)
	if err != nil {
		return jsonError(c, err)
	}
	logMutation(c, "note updated", fmt.Sprintf("%s/%d", note.Room, note.ID))
	return c.JSON(http.StatusOK, note)
}

// Delete is idempotent: a second delete of the same id is still 204.
func (h *NoteHandler) Delete(c echo.Context) error {
	if err := h.notes.DeleteNote(parseID(c.Param("id"))); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
