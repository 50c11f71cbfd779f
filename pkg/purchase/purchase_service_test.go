package purchase

import (
	"context"
	"errors"
	"testing"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurchaseRepository struct {
	purchases map[string]*entities.PurchaseRecord
}

func newFakePurchaseRepository() *fakePurchaseRepository {
	return &fakePurchaseRepository{purchases: make(map[string]*entities.PurchaseRecord)}
}

func (r *fakePurchaseRepository) AddPurchase(_ context.Context, p *entities.PurchaseRecord) error {
	r.purchases[p.ID.String()] = p
	return nil
}

func (r *fakePurchaseRepository) GetPurchasesByBuyer(_ context.Context, email string) ([]*entities.PurchaseRecord, error) {
	var out []*entities.PurchaseRecord
	for _, p := range r.purchases {
		if p.BuyerEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepository) DeletePurchase(_ context.Context, id string) (int64, error) {
	if _, ok := r.purchases[id]; !ok {
		return 0, nil
	}
	delete(r.purchases, id)
	return 1, nil
}

func (r *fakePurchaseRepository) DeletePurchasesByFood(_ context.Context, foodID string) (int64, error) {
	var deleted int64
	for id, p := range r.purchases {
		if p.FoodID.String() == foodID {
			delete(r.purchases, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakePaymentService struct {
	calls int
	fail  bool
}

func (s *fakePaymentService) CreatePaymentToken(orderID string, grossAmount int64, email, name string) (string, string, error) {
	s.calls++
	if s.fail {
		return "", "", domain.ErrPaymentFailed
	}
	return "snap-token", "https://app.sandbox.midtrans.com/snap/v2/" + orderID, nil
}

func validRequest() domain.CreatePurchaseRequest {
	return domain.CreatePurchaseRequest{
		FoodID:         uuid.NewString(),
		FoodName:       "Pasta",
		Price:          12,
		QuantityBought: 3,
		BuyerEmail:     "buyer@example.com",
		BuyerName:      "Buyer",
	}
}

func TestCreatePurchaseStoresSnapshot(t *testing.T) {
	repo := newFakePurchaseRepository()
	svc := NewPurchaseService(repo, &fakePaymentService{})

	req := validRequest()
	res, err := svc.CreatePurchase(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)
	assert.Empty(t, res.PaymentToken)

	stored, ok := repo.purchases[res.ID]
	require.True(t, ok)
	assert.Equal(t, req.FoodID, stored.FoodID.String())
	assert.Equal(t, "Pasta", stored.FoodName)
	assert.Equal(t, 3, stored.QuantityBought)
	assert.Equal(t, float64(12), stored.Price)
	assert.False(t, stored.PurchaseDate.IsZero())
}

func TestCreatePurchaseRejectsBadInput(t *testing.T) {
	repo := newFakePurchaseRepository()
	svc := NewPurchaseService(repo, &fakePaymentService{})

	req := validRequest()
	req.FoodID = "not-a-uuid"
	_, err := svc.CreatePurchase(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	req = validRequest()
	req.QuantityBought = 0
	_, err = svc.CreatePurchase(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Empty(t, repo.purchases)
}

func TestCreatePurchaseWithPaymentToken(t *testing.T) {
	repo := newFakePurchaseRepository()
	payment := &fakePaymentService{}
	svc := NewPurchaseService(repo, payment)

	req := validRequest()
	req.PaymentRequested = true

	res, err := svc.CreatePurchase(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, payment.calls)
	assert.Equal(t, "snap-token", res.PaymentToken)
	assert.NotEmpty(t, res.PaymentRedirectURL)
}

func TestCreatePurchasePaymentFailure(t *testing.T) {
	repo := newFakePurchaseRepository()
	svc := NewPurchaseService(repo, &fakePaymentService{fail: true})

	req := validRequest()
	req.PaymentRequested = true

	_, err := svc.CreatePurchase(context.Background(), req)
	assert.True(t, errors.Is(err, domain.ErrPaymentFailed))
}

func TestGetPurchasesByBuyerFiltersExactEmail(t *testing.T) {
	repo := newFakePurchaseRepository()
	svc := NewPurchaseService(repo, &fakePaymentService{})

	for _, email := range []string{"alice@example.com", "bob@example.com", "alice@example.com"} {
		rec := &entities.PurchaseRecord{ID: uuid.New(), FoodID: uuid.New(), BuyerEmail: email}
		require.NoError(t, repo.AddPurchase(context.Background(), rec))
	}

	purchases, err := svc.GetPurchasesByBuyer(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, purchases, 2)
	for _, p := range purchases {
		assert.Equal(t, "alice@example.com", p.BuyerEmail)
	}
}

func TestDeletePurchase(t *testing.T) {
	repo := newFakePurchaseRepository()
	svc := NewPurchaseService(repo, &fakePaymentService{})

	rec := &entities.PurchaseRecord{ID: uuid.New(), FoodID: uuid.New(), BuyerEmail: "buyer@example.com"}
	require.NoError(t, repo.AddPurchase(context.Background(), rec))

	require.NoError(t, svc.DeletePurchase(context.Background(), rec.ID.String()))
	assert.Empty(t, repo.purchases)

	assert.ErrorIs(t, svc.DeletePurchase(context.Background(), uuid.NewString()), domain.ErrPurchaseNotFound)
	assert.ErrorIs(t, svc.DeletePurchase(context.Background(), "nope"), domain.ErrParseUUID)
}

func TestDeletePurchasesByFoodRemovesAllMatches(t *testing.T) {
	repo := newFakePurchaseRepository()
	svc := NewPurchaseService(repo, &fakePaymentService{})

	foodID := uuid.New()
	for i := 0; i < 3; i++ {
		rec := &entities.PurchaseRecord{ID: uuid.New(), FoodID: foodID, BuyerEmail: "buyer@example.com"}
		require.NoError(t, repo.AddPurchase(context.Background(), rec))
	}
	other := &entities.PurchaseRecord{ID: uuid.New(), FoodID: uuid.New(), BuyerEmail: "buyer@example.com"}
	require.NoError(t, repo.AddPurchase(context.Background(), other))

	deleted, err := svc.DeletePurchasesByFood(context.Background(), foodID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.Len(t, repo.purchases, 1)
}
