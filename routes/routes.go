package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/config"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/handlers"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/middlewares"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/store"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	e.Use(middlewares.WithIdentity(cfg.JWTSecret))

	notes := handlers.NewNoteHandler(store.NewNoteStore(db))
	rooms := handlers.NewRoomHandler(store.NewRoomStore(db, store.Mode(cfg.RoomMode)))

	e.GET("/health", handlers.Health)

	e.GET("/notes", notes.List)
	e.POST("/notes", notes.Create)
	e.PUT("/notes/:id", notes.Update)
	e.DELETE("/notes/:id", notes.Delete)

	e.GET("/rooms", rooms.List)
	e.POST("/rooms", rooms.Create)
	e.DELETE("/rooms/:name", rooms.Delete)
}
