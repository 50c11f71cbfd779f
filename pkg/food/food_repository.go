package food

import (
	"context"

	"savor-oasis-backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.FoodListing) error
		GetFoods(ctx context.Context, search string) ([]*entities.FoodListing, error)
		GetFoodsBySeller(ctx context.Context, email string) ([]*entities.FoodListing, error)
		GetFoodByID(ctx context.Context, id string) (*entities.FoodListing, error)
		UpdateFood(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
		DeleteFood(ctx context.Context, id string) (int64, error)
		AdjustStock(ctx context.Context, id string, quantityDelta, countDelta int) (int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.FoodListing) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoods(ctx context.Context, search string) ([]*entities.FoodListing, error) {
	var foods []*entities.FoodListing

	query := r.db.WithContext(ctx)
	if search != "" {
		query = query.Where("food_name ILIKE ?", "%"+search+"%")
	}

	if err := query.Order("created_at desc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodsBySeller(ctx context.Context, email string) ([]*entities.FoodListing, error) {
	var foods []*entities.FoodListing
	if err := r.db.WithContext(ctx).
		Where("seller_email = ?", email).
		Order("created_at desc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.FoodListing, error) {
	var food entities.FoodListing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// UpdateFood writes only the given columns; created_at is never among them,
// so the original creation time survives edits.
func (r *foodRepository) UpdateFood(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.FoodListing{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodListing{})
	return res.RowsAffected, res.Error
}

// AdjustStock applies both deltas in a single UPDATE so concurrent purchases
// of the same listing never race a read-modify-write cycle.
func (r *foodRepository) AdjustStock(ctx context.Context, id string, quantityDelta, countDelta int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.FoodListing{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", quantityDelta),
			"count":    gorm.Expr("count + ?", countDelta),
		})
	return res.RowsAffected, res.Error
}
