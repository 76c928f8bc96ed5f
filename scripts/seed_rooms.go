// scripts/seed_rooms.go
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/config"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/database"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/logger"
	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/models"
)

// Seeds the default classroom set. Only meaningful in registry mode; in
// derived mode rooms appear with their first note.
func main() {
	_ = godotenv.Load()
	logger.Init()

	cfg := config.Load()
	database.Connect(cfg)

	if cfg.RoomMode != config.RoomModeRegistry {
		fmt.Println("ROOM_MODE is not registry; nothing to seed")
		return
	}

	for _, name := range []string{"Sala1", "Sala2", "Sala3"} {
		var existing models.Room
		err := database.DB.Where("name = ?", name).First(&existing).Error
		if err == nil {
			fmt.Println("room already exists:", name)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query rooms: %v", err)
		}
		if err := database.DB.Create(&models.Room{Name: name}).Error; err != nil {
			log.Fatalf("failed to insert room %s: %v", name, err)
		}
		fmt.Println("room created:", name)
	}
}
