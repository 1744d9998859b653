package domain

import (
	"context"
)

// MealImageContentTypes lists the image formats accepted for meal photos
var MealImageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// FileRepository stores uploaded meal images
type FileRepository interface {
	// Upload saves data under key and returns its public URL
	Upload(ctx context.Context, data []byte, key string, contentType string) (string, error)
}
