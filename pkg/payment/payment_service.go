package payment

import (
	"log"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// PaymentService wraps the Midtrans Snap gateway. A purchase never
	// depends on it; a token is only minted when the client asks to pay
	// online.
	PaymentService interface {
		CreatePaymentToken(orderID string, grossAmount int64, email string, name string) (string, string, error)
	}

	paymentService struct {
		client snap.Client
	}
)

func NewPaymentService() PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IS_PROD") == "true" {
		env = midtrans.Production
	}

	client := snap.Client{}
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{client: client}
}

func (s *paymentService) CreatePaymentToken(orderID string, grossAmount int64, email string, name string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := s.client.CreateTransaction(req)
	if err != nil {
		log.Printf("midtrans transaction failed for order %s: %v", orderID, err)
		return "", "", domain.ErrPaymentFailed
	}

	return resp.Token, resp.RedirectURL, nil
}
