package handlers

import (
	"errors"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/internal/api/presenters"
	"savor-oasis-backend/pkg/purchase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PurchaseHandler interface {
		CreatePurchase(c *fiber.Ctx) error
		GetPurchasesByBuyer(c *fiber.Ctx) error
		DeletePurchase(c *fiber.Ctx) error
		DeletePurchasesByFood(c *fiber.Ctx) error
	}

	purchaseHandler struct {
		purchaseService purchase.PurchaseService
		validator       *validator.Validate
	}
)

func NewPurchaseHandler(purchaseService purchase.PurchaseService, validator *validator.Validate) PurchaseHandler {
	return &purchaseHandler{
		purchaseService: purchaseService,
		validator:       validator,
	}
}

func (h *purchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	req := new(domain.CreatePurchaseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePurchase, err)
	}

	res, err := h.purchaseService.CreatePurchase(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID), errors.Is(err, domain.ErrInvalidQuantity):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePurchase, err)
		case errors.Is(err, domain.ErrPaymentFailed):
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedCreatePurchase, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreatePurchase, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePurchase)
}

// GetPurchasesByBuyer returns the receipts of the buyer named in the path;
// the session email must match it exactly.
func (h *purchaseHandler) GetPurchasesByBuyer(c *fiber.Ctx) error {
	tokenEmail, _ := c.Locals("email").(string)
	email := c.Params("email")

	if tokenEmail != email {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageForbiddenAccess, domain.ErrForbiddenAccess)
	}

	purchases, err := h.purchaseService.GetPurchasesByBuyer(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPurchases, err)
	}

	return presenters.SuccessResponse(c, purchases, fiber.StatusOK, domain.MessageSuccessGetPurchases)
}

func (h *purchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.purchaseService.DeletePurchase(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrPurchaseNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeletePurchase, err)
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePurchase, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeletePurchase, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePurchase)
}

// DeletePurchasesByFood is the cascade cleanup route: removes every receipt
// referencing the listing id.
func (h *purchaseHandler) DeletePurchasesByFood(c *fiber.Ctx) error {
	foodID := c.Params("id")

	deleted, err := h.purchaseService.DeletePurchasesByFood(c.Context(), foodID)
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePurchase, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeletePurchase, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"deleted_count": deleted}, fiber.StatusOK, domain.MessageSuccessDeletePurchases)
}
