package catalog

import (
	"strings"

	"github.com/junaidrashid-git/kula-api/models"
)

// foodImages are the foods with a bundled picture.
var foodImages = map[string]models.ImageKey{
	"tea":     "tea",
	"githeri": "githeri",
	"burger":  "burger",
	"pizza":   "pizza",
	"chicken": "chicken",
}

// ImageFor maps a food name to its image, ignoring case. Every other name,
// including the empty one, gets models.DefaultImage.
func ImageFor(name string) models.ImageKey {
	if key, ok := foodImages[strings.ToLower(strings.TrimSpace(name))]; ok {
		return key
	}
	return models.DefaultImage
}
