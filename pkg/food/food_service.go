package food

import (
	"context"
	"errors"
	"log"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/entities"
	"savor-oasis-backend/internal/utils/storage"
	"savor-oasis-backend/pkg/purchase"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.AddFoodResponse, error)
		GetFoods(ctx context.Context, search string) ([]domain.FoodResponse, error)
		GetFoodsBySeller(ctx context.Context, email string) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest) error
		DeleteFood(ctx context.Context, id string) error
		ApplyPurchase(ctx context.Context, id string, quantityBought int) error
		RevertPurchase(ctx context.Context, id string, quantityBought int) error
	}

	foodService struct {
		foodRepository     FoodRepository
		purchaseRepository purchase.PurchaseRepository
		s3                 storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, purchaseRepository purchase.PurchaseRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository:     foodRepository,
		purchaseRepository: purchaseRepository,
		s3:                 s3,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.AddFoodResponse, error) {
	food := &entities.FoodListing{
		ID:          uuid.New(),
		FoodName:    req.FoodName,
		FoodImage:   req.FoodImage,
		Category:    req.Category,
		Origin:      req.Origin,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Count:       req.Count,
		SellerEmail: req.SellerEmail,
		SellerName:  req.SellerName,
	}

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return domain.AddFoodResponse{}, err
	}

	return domain.AddFoodResponse{ID: food.ID.String()}, nil
}

func (s *foodService) GetFoods(ctx context.Context, search string) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx, search)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) GetFoodsBySeller(ctx context.Context, email string) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoodsBySeller(ctx, email)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.FoodResponse{}, domain.ErrParseUUID
	}

	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

// UpdateFood applies only the fields present in the request, so a partial
// body leaves the other columns (and created_at) untouched. When no row
// matches the id, the provided fields seed a new listing under it.
func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest) error {
	foodID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	fields := updateFields(req)
	if len(fields) > 0 {
		affected, err := s.foodRepository.UpdateFood(ctx, id, fields)
		if err != nil {
			return err
		}
		if affected > 0 {
			return nil
		}
	} else if _, err := s.foodRepository.GetFoodByID(ctx, id); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	food := &entities.FoodListing{ID: foodID}
	applyUpdate(food, req)
	return s.foodRepository.AddFood(ctx, food)
}

func updateFields(req domain.UpdateFoodRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.FoodName != nil {
		fields["food_name"] = *req.FoodName
	}
	if req.FoodImage != nil {
		fields["food_image"] = *req.FoodImage
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Origin != nil {
		fields["origin"] = *req.Origin
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.Count != nil {
		fields["count"] = *req.Count
	}
	if req.SellerEmail != nil {
		fields["seller_email"] = *req.SellerEmail
	}
	if req.SellerName != nil {
		fields["seller_name"] = *req.SellerName
	}
	return fields
}

func applyUpdate(food *entities.FoodListing, req domain.UpdateFoodRequest) {
	if req.FoodName != nil {
		food.FoodName = *req.FoodName
	}
	if req.FoodImage != nil {
		food.FoodImage = *req.FoodImage
	}
	if req.Category != nil {
		food.Category = *req.Category
	}
	if req.Origin != nil {
		food.Origin = *req.Origin
	}
	if req.Description != nil {
		food.Description = *req.Description
	}
	if req.Price != nil {
		food.Price = *req.Price
	}
	if req.Quantity != nil {
		food.Quantity = *req.Quantity
	}
	if req.Count != nil {
		food.Count = *req.Count
	}
	if req.SellerEmail != nil {
		food.SellerEmail = *req.SellerEmail
	}
	if req.SellerName != nil {
		food.SellerName = *req.SellerName
	}
}

// DeleteFood removes the listing, then its receipts and stored image as
// separate best-effort follow-ups. The two steps are not atomic with the
// delete; a crash in between leaves orphaned receipts until the next cascade.
func (s *foodService) DeleteFood(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	deleted, err := s.foodRepository.DeleteFood(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrFoodNotFound
	}

	if _, err := s.purchaseRepository.DeletePurchasesByFood(ctx, id); err != nil {
		log.Printf("cascade delete of purchases for food %s failed: %v", id, err)
	}

	if food.FoodImage != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(food.FoodImage); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return nil
}

// ApplyPurchase moves quantityBought units from stock to the sold counter.
// Stock sufficiency is intentionally not checked here; see RevertPurchase
// for the inverse.
func (s *foodService) ApplyPurchase(ctx context.Context, id string, quantityBought int) error {
	if quantityBought <= 0 {
		return domain.ErrInvalidQuantity
	}
	// quantity + count is conserved: both deltas come from the same n
	return s.adjustStock(ctx, id, -quantityBought, quantityBought)
}

func (s *foodService) RevertPurchase(ctx context.Context, id string, quantityBought int) error {
	if quantityBought <= 0 {
		return domain.ErrInvalidQuantity
	}
	return s.adjustStock(ctx, id, quantityBought, -quantityBought)
}

func (s *foodService) adjustStock(ctx context.Context, id string, quantityDelta, countDelta int) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	affected, err := s.foodRepository.AdjustStock(ctx, id, quantityDelta, countDelta)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFoodNotFound
	}
	return nil
}

func toFoodResponse(food *entities.FoodListing) domain.FoodResponse {
	return domain.FoodResponse{
		ID:          food.ID.String(),
		FoodName:    food.FoodName,
		FoodImage:   food.FoodImage,
		Category:    food.Category,
		Origin:      food.Origin,
		Description: food.Description,
		Price:       food.Price,
		Quantity:    food.Quantity,
		Count:       food.Count,
		SellerEmail: food.SellerEmail,
		SellerName:  food.SellerName,
		CreatedAt:   food.CreatedAt,
	}
}

func toFoodResponses(foods []*entities.FoodListing) []domain.FoodResponse {
	responses := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		responses = append(responses, toFoodResponse(food))
	}
	return responses
}
