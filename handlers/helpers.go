package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/logger"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/middlewares"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/store"
)

// logMutation records who changed what. The identity comes from the
// optional bearer token; the session id lets one board's actions be
// grouped in the log.
func logMutation(c echo.Context, event string, target string) {
	user := "anonymous"
	if id, ok := middlewares.CurrentUser(c); ok {
		user = id.Name
	}
	logger.Log.Info().
		Str("user", user).
		Str("session", c.Request().Header.Get("X-Board-Session")).
		Str("target", target).
		Msg(event)
}

// parseID converts a path id to uint. A malformed id behaves like an id
// that was never assigned (0), which no row can have.
func parseID(s string) uint {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

// jsonError maps store errors to the fixed status codes of the API.
// Storage-engine text is logged, never returned.
func jsonError(c echo.Context, err error) error {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "VALIDATION_ERROR",
			"fields": verr.Fields,
		})
	case errors.Is(err, store.ErrNoteNotFound), errors.Is(err, store.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	case errors.Is(err, store.ErrRoomExists):
		return c.JSON(http.StatusConflict, map[string]string{"error": "ROOM_EXISTS"})
	default:
		logger.Log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("storage failure")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "STORAGE_ERROR"})
	}
}
