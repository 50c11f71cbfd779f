package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetGallery  = "gallery photos retrieved successfully"
	MessageSuccessAddPhoto    = "gallery photo saved successfully"
	MessageSuccessUploadImage = "image uploaded successfully"
	MessageFailedGetGallery   = "failed to retrieve gallery photos"
	MessageFailedAddPhoto     = "failed to save gallery photo"
	MessageFailedUploadImage  = "failed to upload image"

	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	AddGalleryPhotoRequest struct {
		ImageURL  string `json:"image_url" validate:"required,url"`
		Caption   string `json:"caption" validate:"omitempty"`
		UserEmail string `json:"user_email" validate:"omitempty,email"`
		UserName  string `json:"user_name" validate:"omitempty"`
	}

	AddGalleryPhotoResponse struct {
		ID string `json:"inserted_id"`
	}

	UploadImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadImageResponse struct {
		ImageURL string `json:"image_url"`
	}

	GalleryPhotoResponse struct {
		ID        string    `json:"id"`
		ImageURL  string    `json:"image_url"`
		Caption   string    `json:"caption,omitempty"`
		UserEmail string    `json:"user_email,omitempty"`
		UserName  string    `json:"user_name,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
