package handlers

import (
	"errors"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/internal/api/presenters"
	"savor-oasis-backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFood(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetFoodsBySeller(c *fiber.Ctx) error
		GetFoodDetails(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		ApplyPurchaseChanges(c *fiber.Ctx) error
		RevertPurchaseChanges(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	res, err := h.foodService.AddFood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	search := c.Query("search")

	foods, err := h.foodService.GetFoods(c.Context(), search)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

// GetFoodsBySeller returns the listings of the seller named in the path.
// The path email must equal the session email byte-for-byte.
func (h *foodHandler) GetFoodsBySeller(c *fiber.Ctx) error {
	tokenEmail, _ := c.Locals("email").(string)
	email := c.Params("email")

	if tokenEmail != email {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageForbiddenAccess, domain.ErrForbiddenAccess)
	}

	foods, err := h.foodService.GetFoodsBySeller(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	foodDetails, err := h.foodService.GetFoodByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) || errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedFoodNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foodDetails, fiber.StatusOK, domain.MessageSuccessGetFood)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	if err := h.foodService.UpdateFood(c.Context(), id, *req); err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.foodService.DeleteFood(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedFoodNotFound, err)
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFood, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFood, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) ApplyPurchaseChanges(c *fiber.Ctx) error {
	return h.adjustStock(c, false)
}

func (h *foodHandler) RevertPurchaseChanges(c *fiber.Ctx) error {
	return h.adjustStock(c, true)
}

func (h *foodHandler) adjustStock(c *fiber.Ctx, revert bool) error {
	id := c.Params("id")
	req := new(domain.StockAdjustmentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustStock, err)
	}

	var err error
	if revert {
		err = h.foodService.RevertPurchase(c.Context(), id, req.QuantityBought)
	} else {
		err = h.foodService.ApplyPurchase(c.Context(), id, req.QuantityBought)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedFoodNotFound, err)
		case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustStock, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAdjustStock, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAdjustStock)
}
