package storage_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"tassili/internal/services"
)

var Module = fx.Provide(provideStorage)

func provideStorage() services.StorageService {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	baseURL := os.Getenv("UPLOAD_BASE_URL")
	if baseURL == "" {
		baseURL = "/uploads"
	}

	storage, err := services.NewDiskStorage(dir, baseURL)
	if err != nil {
		log.Printf("Failed to initialize disk storage at %s: %v", dir, err)
	}

	return storage
}
