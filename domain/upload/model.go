package upload

import (
	"fmt"
	"io"
	"strings"
)

const (
	MaxImageBytes int64 = 10 << 20
	MaxVideoBytes int64 = 50 << 20
)

// Kind partitions the allow-list. It is also the object key prefix.
type Kind string

const (
	KindImage Kind = "images"
	KindVideo Kind = "videos"
)

var imageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif", "image/svg+xml"}

var videoTypes = []string{"video/mp4", "video/webm", "video/quicktime"}

// File is one uploaded file as received from the client.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Result describes a stored blob.
type Result struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// Classify returns the kind and size limit for a MIME type. Parameters such
// as "; charset=" are ignored.
func Classify(contentType string) (Kind, int64, bool) {
	mt := normalizeType(contentType)
	for _, t := range imageTypes {
		if mt == t {
			return KindImage, MaxImageBytes, true
		}
	}
	for _, t := range videoTypes {
		if mt == t {
			return KindVideo, MaxVideoBytes, true
		}
	}
	return "", 0, false
}

func normalizeType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

func allowedTypesMessage() string {
	return fmt.Sprintf("Allowed images (max %s): %s. Allowed videos (max %s): %s.",
		formatSize(MaxImageBytes), strings.Join(imageTypes, ", "),
		formatSize(MaxVideoBytes), strings.Join(videoTypes, ", "))
}

func formatSize(n int64) string {
	return fmt.Sprintf("%dMB", n>>20)
}
