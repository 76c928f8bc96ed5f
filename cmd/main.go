package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/config"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/database"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/logger"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/routes"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger.Init()
	cfg := config.Load()

	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, database.DB, cfg)

	addr := ":" + cfg.AppPort
	logger.Log.Info().Str("addr", addr).Str("room_mode", cfg.RoomMode).Msg("server listening")
	if err := e.Start(addr); err != nil {
		logger.Log.Fatal().Err(err).Msg("server stopped")
	}
}
