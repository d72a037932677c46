package entity

// Image references a file held by the remote image host.
type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// IndexOfImage returns the position of publicID in images, or -1.
func IndexOfImage(images []Image, publicID string) int {
	for i, img := range images {
		if img.PublicID == publicID {
			return i
		}
	}
	return -1
}
