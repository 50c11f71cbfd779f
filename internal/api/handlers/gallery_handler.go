package handlers

import (
	"errors"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/internal/api/presenters"
	"savor-oasis-backend/pkg/gallery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GalleryHandler interface {
		GetGallery(c *fiber.Ctx) error
		AddGalleryPhoto(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
	}

	galleryHandler struct {
		galleryService gallery.GalleryService
		validator      *validator.Validate
	}
)

func NewGalleryHandler(galleryService gallery.GalleryService, validator *validator.Validate) GalleryHandler {
	return &galleryHandler{
		galleryService: galleryService,
		validator:      validator,
	}
}

func (h *galleryHandler) GetGallery(c *fiber.Ctx) error {
	photos, err := h.galleryService.GetPhotos(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetGallery, err)
	}

	return presenters.SuccessResponse(c, photos, fiber.StatusOK, domain.MessageSuccessGetGallery)
}

func (h *galleryHandler) AddGalleryPhoto(c *fiber.Ctx) error {
	req := new(domain.AddGalleryPhotoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPhoto, err)
	}

	res, err := h.galleryService.AddPhoto(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddPhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPhoto)
}

func (h *galleryHandler) UploadImage(c *fiber.Ctx) error {
	req := new(domain.UploadImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	userEmail, _ := c.Locals("email").(string)
	res, err := h.galleryService.UploadImage(c.Context(), *req, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidImageFormat) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
