package handlers

import (
	"context"

	"skylight/internal/features/gallery/models"
)

// GalleryService defines the methods that handlers need from the gallery feature
type GalleryService interface {
	LoadWindow(ctx context.Context, window models.Window) models.GalleryView
	CurrentView() models.GalleryView
}
