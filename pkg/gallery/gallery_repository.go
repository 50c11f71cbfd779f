package gallery

import (
	"context"

	"savor-oasis-backend/entities"

	"gorm.io/gorm"
)

type (
	GalleryRepository interface {
		AddPhoto(ctx context.Context, photo *entities.GalleryPhoto) error
		GetPhotos(ctx context.Context) ([]*entities.GalleryPhoto, error)
	}

	galleryRepository struct {
		db *gorm.DB
	}
)

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) AddPhoto(ctx context.Context, photo *entities.GalleryPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *galleryRepository) GetPhotos(ctx context.Context) ([]*entities.GalleryPhoto, error) {
	var photos []*entities.GalleryPhoto
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}
