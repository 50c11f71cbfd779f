package purchase

import (
	"context"
	"fmt"
	"log"
	"time"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/entities"
	"savor-oasis-backend/internal/utils"
	"savor-oasis-backend/internal/utils/mailing"
	"savor-oasis-backend/pkg/payment"

	"github.com/google/uuid"
)

type (
	PurchaseService interface {
		CreatePurchase(ctx context.Context, req domain.CreatePurchaseRequest) (domain.CreatePurchaseResponse, error)
		GetPurchasesByBuyer(ctx context.Context, email string) ([]domain.PurchaseResponse, error)
		DeletePurchase(ctx context.Context, id string) error
		DeletePurchasesByFood(ctx context.Context, foodID string) (int64, error)
	}

	purchaseService struct {
		purchaseRepository PurchaseRepository
		paymentService     payment.PaymentService
	}
)

func NewPurchaseService(purchaseRepository PurchaseRepository, paymentService payment.PaymentService) PurchaseService {
	return &purchaseService{
		purchaseRepository: purchaseRepository,
		paymentService:     paymentService,
	}
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req domain.CreatePurchaseRequest) (domain.CreatePurchaseResponse, error) {
	foodID, err := uuid.Parse(req.FoodID)
	if err != nil {
		return domain.CreatePurchaseResponse{}, domain.ErrParseUUID
	}
	if req.QuantityBought <= 0 {
		return domain.CreatePurchaseResponse{}, domain.ErrInvalidQuantity
	}

	record := &entities.PurchaseRecord{
		ID:             uuid.New(),
		FoodID:         foodID,
		BuyerEmail:     req.BuyerEmail,
		BuyerName:      req.BuyerName,
		QuantityBought: req.QuantityBought,
		FoodName:       req.FoodName,
		FoodImage:      req.FoodImage,
		Price:          req.Price,
		PurchaseDate:   time.Now(),
	}

	if err := s.purchaseRepository.AddPurchase(ctx, record); err != nil {
		return domain.CreatePurchaseResponse{}, err
	}

	res := domain.CreatePurchaseResponse{ID: record.ID.String()}

	// The receipt is already persisted when the gateway is called; on a
	// gateway failure it stays behind, and a client retry inserts a second
	// one. Same non-atomic gap as the listing-delete cascade.
	if req.PaymentRequested {
		grossAmount := int64(req.Price * float64(req.QuantityBought))
		token, redirectURL, err := s.paymentService.CreatePaymentToken(
			record.ID.String(), grossAmount, req.BuyerEmail, req.BuyerName,
		)
		if err != nil {
			return domain.CreatePurchaseResponse{}, err
		}
		res.PaymentToken = token
		res.PaymentRedirectURL = redirectURL
	}

	s.sendReceiptMail(record)

	return res, nil
}

// sendReceiptMail is best-effort: a mail failure never fails the purchase.
// Skipped entirely when SMTP is not configured.
func (s *purchaseService) sendReceiptMail(record *entities.PurchaseRecord) {
	if utils.GetConfig("SMTP_HOST") == "" {
		return
	}

	go func() {
		subject := fmt.Sprintf("Your Savor Oasis order: %s", record.FoodName)
		body := mailing.BuildPurchaseReceiptBody(
			record.BuyerName, record.FoodName, record.QuantityBought, record.Price,
		)
		if err := mailing.SendMail(record.BuyerEmail, subject, body); err != nil {
			log.Printf("failed to send receipt mail to %s: %v", record.BuyerEmail, err)
		}
	}()
}

func (s *purchaseService) GetPurchasesByBuyer(ctx context.Context, email string) ([]domain.PurchaseResponse, error) {
	purchases, err := s.purchaseRepository.GetPurchasesByBuyer(ctx, email)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		responses = append(responses, domain.PurchaseResponse{
			ID:             p.ID.String(),
			FoodID:         p.FoodID.String(),
			FoodName:       p.FoodName,
			FoodImage:      p.FoodImage,
			Price:          p.Price,
			QuantityBought: p.QuantityBought,
			BuyerEmail:     p.BuyerEmail,
			BuyerName:      p.BuyerName,
			PurchaseDate:   p.PurchaseDate,
		})
	}
	return responses, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	deleted, err := s.purchaseRepository.DeletePurchase(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrPurchaseNotFound
	}
	return nil
}

func (s *purchaseService) DeletePurchasesByFood(ctx context.Context, foodID string) (int64, error) {
	if _, err := uuid.Parse(foodID); err != nil {
		return 0, domain.ErrParseUUID
	}
	return s.purchaseRepository.DeletePurchasesByFood(ctx, foodID)
}
