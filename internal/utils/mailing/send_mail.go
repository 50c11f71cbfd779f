package mailing

import (
	"fmt"
	"strconv"

	"savor-oasis-backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// BuildPurchaseReceiptBody renders the confirmation mail sent to a buyer
// right after their order is stored.
func BuildPurchaseReceiptBody(buyerName, foodName string, quantity int, price float64) string {
	total := price * float64(quantity)
	return fmt.Sprintf(
		`<h2>Thanks for your order, %s!</h2>
<p>You purchased <b>%d x %s</b>.</p>
<p>Total: <b>%.2f</b></p>
<p>Visit <a href="%s">Savor Oasis</a> to track your purchases.</p>`,
		buyerName, quantity, foodName, total, utils.GetConfig("APP_URL"),
	)
}
