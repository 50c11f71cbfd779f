package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/internal/middleware"
	"savor-oasis-backend/internal/utils"
	"savor-oasis-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurchaseService struct {
	byBuyer map[string][]domain.PurchaseResponse
}

func (s *fakePurchaseService) CreatePurchase(_ context.Context, req domain.CreatePurchaseRequest) (domain.CreatePurchaseResponse, error) {
	return domain.CreatePurchaseResponse{ID: "created"}, nil
}

func (s *fakePurchaseService) GetPurchasesByBuyer(_ context.Context, email string) ([]domain.PurchaseResponse, error) {
	return s.byBuyer[email], nil
}

func (s *fakePurchaseService) DeletePurchase(_ context.Context, _ string) error {
	return nil
}

func (s *fakePurchaseService) DeletePurchasesByFood(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

type fakeFoodService struct {
	lastSearch string
	lastUpdate *domain.UpdateFoodRequest
	applied    map[string]int
	reverted   map[string]int
	applyErr   error
}

func newFakeFoodService() *fakeFoodService {
	return &fakeFoodService{applied: map[string]int{}, reverted: map[string]int{}}
}

func (s *fakeFoodService) AddFood(_ context.Context, _ domain.AddFoodRequest) (domain.AddFoodResponse, error) {
	return domain.AddFoodResponse{ID: "new"}, nil
}

func (s *fakeFoodService) GetFoods(_ context.Context, search string) ([]domain.FoodResponse, error) {
	s.lastSearch = search
	return []domain.FoodResponse{{FoodName: "Pasta"}}, nil
}

func (s *fakeFoodService) GetFoodsBySeller(_ context.Context, email string) ([]domain.FoodResponse, error) {
	return []domain.FoodResponse{{SellerEmail: email}}, nil
}

func (s *fakeFoodService) GetFoodByID(_ context.Context, _ string) (domain.FoodResponse, error) {
	return domain.FoodResponse{}, domain.ErrFoodNotFound
}

func (s *fakeFoodService) UpdateFood(_ context.Context, _ string, req domain.UpdateFoodRequest) error {
	s.lastUpdate = &req
	return nil
}

func (s *fakeFoodService) DeleteFood(_ context.Context, _ string) error {
	return nil
}

func (s *fakeFoodService) ApplyPurchase(_ context.Context, id string, n int) error {
	if s.applyErr != nil {
		return s.applyErr
	}
	s.applied[id] += n
	return nil
}

func (s *fakeFoodService) RevertPurchase(_ context.Context, id string, n int) error {
	s.reverted[id] += n
	return nil
}

func newTestApp(t *testing.T, foodSvc *fakeFoodService, purchaseSvc *fakePurchaseService) (*fiber.App, jwt.JWTService) {
	t.Helper()
	t.Setenv("JWT_SECRET", "handlers-test-secret")
	utils.InitValidator()

	jwtService := jwt.NewJWTService()
	auth := middleware.NewMiddleware().AuthMiddleware(jwtService)
	app := fiber.New()

	foodHandler := NewFoodHandler(foodSvc, utils.Validate)
	purchaseHandler := NewPurchaseHandler(purchaseSvc, utils.Validate)

	app.Get("/allfoods", foodHandler.GetFoods)
	app.Get("/allfoods/:email", auth, foodHandler.GetFoodsBySeller)
	app.Get("/purchases/:email", auth, purchaseHandler.GetPurchasesByBuyer)
	app.Put("/update-foods/:id", foodHandler.UpdateFood)
	app.Patch("/purchase-changes/:id", foodHandler.ApplyPurchaseChanges)
	app.Patch("/delete-changes/:id", foodHandler.RevertPurchaseChanges)

	return app, jwtService
}

func sessionCookieFor(t *testing.T, jwtService jwt.JWTService, email string) *http.Cookie {
	t.Helper()
	token, err := jwtService.GenerateToken(email, "")
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}

func TestGetPurchasesUnauthenticated(t *testing.T) {
	app, _ := newTestApp(t, newFakeFoodService(), &fakePurchaseService{})

	req := httptest.NewRequest(http.MethodGet, "/purchases/alice@example.com", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetPurchasesForbiddenForOtherUser(t *testing.T) {
	app, jwtService := newTestApp(t, newFakeFoodService(), &fakePurchaseService{})

	req := httptest.NewRequest(http.MethodGet, "/purchases/alice@example.com", nil)
	req.AddCookie(sessionCookieFor(t, jwtService, "bob@example.com"))

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetPurchasesOwnerAllowed(t *testing.T) {
	purchaseSvc := &fakePurchaseService{byBuyer: map[string][]domain.PurchaseResponse{
		"alice@example.com": {{FoodName: "Pasta", BuyerEmail: "alice@example.com"}},
	}}
	app, jwtService := newTestApp(t, newFakeFoodService(), purchaseSvc)

	req := httptest.NewRequest(http.MethodGet, "/purchases/alice@example.com", nil)
	req.AddCookie(sessionCookieFor(t, jwtService, "alice@example.com"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                      `json:"success"`
		Data    []domain.PurchaseResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Pasta", body.Data[0].FoodName)
}

// Email scoping is exact: differing case is a different identity.
func TestGetSellerFoodsCaseSensitiveEmailMatch(t *testing.T) {
	app, jwtService := newTestApp(t, newFakeFoodService(), &fakePurchaseService{})

	req := httptest.NewRequest(http.MethodGet, "/allfoods/Alice@example.com", nil)
	req.AddCookie(sessionCookieFor(t, jwtService, "alice@example.com"))

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetFoodsPassesSearchQuery(t *testing.T) {
	foodSvc := newFakeFoodService()
	app, _ := newTestApp(t, foodSvc, &fakePurchaseService{})

	req := httptest.NewRequest(http.MethodGet, "/allfoods?search=pas", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pas", foodSvc.lastSearch)
}

// A body carrying a single field is a valid update; the remaining fields
// stay absent rather than failing validation.
func TestUpdateFoodAcceptsPartialBody(t *testing.T) {
	foodSvc := newFakeFoodService()
	app, _ := newTestApp(t, foodSvc, &fakePurchaseService{})

	req := httptest.NewRequest(http.MethodPut, "/update-foods/f1", strings.NewReader(`{"price":15}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, foodSvc.lastUpdate)
	require.NotNil(t, foodSvc.lastUpdate.Price)
	assert.Equal(t, 15.0, *foodSvc.lastUpdate.Price)
	assert.Nil(t, foodSvc.lastUpdate.FoodName)
}

func TestUpdateFoodRejectsMalformedField(t *testing.T) {
	foodSvc := newFakeFoodService()
	app, _ := newTestApp(t, foodSvc, &fakePurchaseService{})

	req := httptest.NewRequest(http.MethodPut, "/update-foods/f1", strings.NewReader(`{"seller_email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, foodSvc.lastUpdate)
}

func TestPurchaseChangesCoercesBody(t *testing.T) {
	foodSvc := newFakeFoodService()
	app, _ := newTestApp(t, foodSvc, &fakePurchaseService{})

	req := httptest.NewRequest(http.MethodPatch, "/purchase-changes/f1", strings.NewReader(`{"quantityBought":3}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, foodSvc.applied["f1"])
}

func TestDeleteChangesRevertsStock(t *testing.T) {
	foodSvc := newFakeFoodService()
	app, _ := newTestApp(t, foodSvc, &fakePurchaseService{})

	req := httptest.NewRequest(http.MethodPatch, "/delete-changes/f1", strings.NewReader(`{"quantityBought":2}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, foodSvc.reverted["f1"])
}

func TestPurchaseChangesRejectsZeroQuantity(t *testing.T) {
	foodSvc := newFakeFoodService()
	app, _ := newTestApp(t, foodSvc, &fakePurchaseService{})

	req := httptest.NewRequest(http.MethodPatch, "/purchase-changes/f1", strings.NewReader(`{"quantityBought":0}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, foodSvc.applied)
}

func TestPurchaseChangesUnknownListing(t *testing.T) {
	foodSvc := newFakeFoodService()
	foodSvc.applyErr = domain.ErrFoodNotFound
	app, _ := newTestApp(t, foodSvc, &fakePurchaseService{})

	req := httptest.NewRequest(http.MethodPatch, "/purchase-changes/missing", strings.NewReader(`{"quantityBought":1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
