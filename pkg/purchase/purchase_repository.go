package purchase

import (
	"context"

	"savor-oasis-backend/entities"

	"gorm.io/gorm"
)

type (
	PurchaseRepository interface {
		AddPurchase(ctx context.Context, purchase *entities.PurchaseRecord) error
		GetPurchasesByBuyer(ctx context.Context, email string) ([]*entities.PurchaseRecord, error)
		DeletePurchase(ctx context.Context, id string) (int64, error)
		DeletePurchasesByFood(ctx context.Context, foodID string) (int64, error)
	}

	purchaseRepository struct {
		db *gorm.DB
	}
)

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) AddPurchase(ctx context.Context, purchase *entities.PurchaseRecord) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) GetPurchasesByBuyer(ctx context.Context, email string) ([]*entities.PurchaseRecord, error) {
	var purchases []*entities.PurchaseRecord
	if err := r.db.WithContext(ctx).
		Where("buyer_email = ?", email).
		Order("purchase_date desc").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) DeletePurchase(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PurchaseRecord{})
	return res.RowsAffected, res.Error
}

// DeletePurchasesByFood removes every receipt referencing the listing, not
// just the first match.
func (r *purchaseRepository) DeletePurchasesByFood(ctx context.Context, foodID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("food_id = ?", foodID).Delete(&entities.PurchaseRecord{})
	return res.RowsAffected, res.Error
}
