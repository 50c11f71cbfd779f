package jwt

import (
	"errors"
	"fmt"
	"time"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

// Sessions are effectively non-expiring; the cookie is the only logout
// mechanism the web client uses.
const tokenValidity = 365 * 24 * time.Hour

type (
	JWTService interface {
		GenerateToken(email string, name string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetEmailByToken(token string) (string, string, error)
	}

	sessionClaim struct {
		Email string `json:"email"`
		Name  string `json:"name,omitempty"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "SAVOR-OASIS",
	}
}

func (j *jwtService) GenerateToken(email string, name string) (string, error) {
	claims := sessionClaim{
		email,
		name,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenValidity)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &sessionClaim{}, j.parseToken)
}

// GetEmailByToken returns the email and display name bound to a session
// token, or a domain error when the token cannot be trusted.
func (j *jwtService) GetEmailByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*sessionClaim)
	if claims.Email == "" {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.Email, claims.Name, nil
}
