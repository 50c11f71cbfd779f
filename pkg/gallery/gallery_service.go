package gallery

import (
	"context"
	"fmt"
	"strings"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/entities"
	"savor-oasis-backend/internal/utils/storage"

	"github.com/google/uuid"
)

type (
	GalleryService interface {
		AddPhoto(ctx context.Context, req domain.AddGalleryPhotoRequest) (domain.AddGalleryPhotoResponse, error)
		GetPhotos(ctx context.Context) ([]domain.GalleryPhotoResponse, error)
		UploadImage(ctx context.Context, req domain.UploadImageRequest, userEmail string) (domain.UploadImageResponse, error)
	}

	galleryService struct {
		galleryRepository GalleryRepository
		s3                storage.AwsS3
	}
)

func NewGalleryService(galleryRepository GalleryRepository, s3 storage.AwsS3) GalleryService {
	return &galleryService{
		galleryRepository: galleryRepository,
		s3:                s3,
	}
}

func (s *galleryService) AddPhoto(ctx context.Context, req domain.AddGalleryPhotoRequest) (domain.AddGalleryPhotoResponse, error) {
	photo := &entities.GalleryPhoto{
		ID:        uuid.New(),
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
	}

	if err := s.galleryRepository.AddPhoto(ctx, photo); err != nil {
		return domain.AddGalleryPhotoResponse{}, err
	}
	return domain.AddGalleryPhotoResponse{ID: photo.ID.String()}, nil
}

func (s *galleryService) GetPhotos(ctx context.Context) ([]domain.GalleryPhotoResponse, error) {
	photos, err := s.galleryRepository.GetPhotos(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.GalleryPhotoResponse, 0, len(photos))
	for _, photo := range photos {
		responses = append(responses, domain.GalleryPhotoResponse{
			ID:        photo.ID.String(),
			ImageURL:  photo.ImageURL,
			Caption:   photo.Caption,
			UserEmail: photo.UserEmail,
			UserName:  photo.UserName,
			CreatedAt: photo.CreatedAt,
		})
	}
	return responses, nil
}

// UploadImage stores a client image on S3 and hands back its public URL.
// The client then references the URL from a gallery photo or a listing.
func (s *galleryService) UploadImage(_ context.Context, req domain.UploadImageRequest, userEmail string) (domain.UploadImageResponse, error) {
	prefix := "anonymous"
	if userEmail != "" {
		prefix = strings.SplitN(userEmail, "@", 2)[0]
	}

	fileName := fmt.Sprintf("upload-%s", prefix)
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "images", storage.AllowImage...)
	if err != nil {
		return domain.UploadImageResponse{}, err
	}

	return domain.UploadImageResponse{ImageURL: s.s3.GetPublicLinkKey(objectKey)}, nil
}
