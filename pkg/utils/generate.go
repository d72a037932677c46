package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

// ==================== OBJECT KEYS ====================

// GenerateImageKey builds a unique object key for an uploaded image,
// keeping the original file extension.
func GenerateImageKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return uuid.New().String() + ext
	}
	return folder + "/" + uuid.New().String() + ext
}
