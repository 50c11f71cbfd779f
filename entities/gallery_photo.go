package entities

import (
	"github.com/google/uuid"
)

type GalleryPhoto struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `gorm:"type:text" json:"caption,omitempty"`
	UserEmail string    `json:"user_email,omitempty"`
	UserName  string    `json:"user_name,omitempty"`

	Timestamp
}
