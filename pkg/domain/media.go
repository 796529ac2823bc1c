package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaID uniquely identifies a media item.
type MediaID uuid.UUID

// MediaKind is the coarse type of an uploaded file.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// MediaKindOf derives the media kind from a MIME type.
func MediaKindOf(mimeType string) MediaKind {
	if strings.HasPrefix(strings.ToLower(mimeType), "video/") {
		return MediaKindVideo
	}

	return MediaKindImage
}

// Media is a file attached to a specialist. The file itself lives in the
// object store under Key.
type Media struct {
	ID           MediaID      `json:"id"`
	SpecialistID SpecialistID `json:"specialistId"`

	// Key is the object store key returned when the file was uploaded.
	Key      string    `json:"key"`
	Size     int64     `json:"size"`
	MimeType string    `json:"mimeType"`
	Kind     MediaKind `json:"kind"`
	// DisplayOrder is assigned sequentially at upload time and never reused.
	DisplayOrder int `json:"displayOrder"`

	UploadedAt time.Time `json:"uploadedAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	DeletedAt  time.Time `json:"-"`
}
