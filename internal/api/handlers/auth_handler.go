package handlers

import (
	"time"

	"savor-oasis-backend/domain"
	"savor-oasis-backend/internal/api/presenters"
	"savor-oasis-backend/internal/utils"
	"savor-oasis-backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		CreateToken(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	authHandler struct {
		jwtService jwt.JWTService
		validator  *validator.Validate
	}
)

func NewAuthHandler(jwtService jwt.JWTService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		jwtService: jwtService,
		validator:  validator,
	}
}

func (h *authHandler) CreateToken(c *fiber.Ctx) error {
	req := new(domain.CreateTokenRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateToken, err)
	}

	token, err := h.jwtService.GenerateToken(req.Email, req.Name)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateToken, err)
	}

	c.Cookie(sessionCookie(token, time.Now().Add(365*24*time.Hour)))

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCreateToken)
}

// Logout clears the session cookie by expiring it immediately; the cookie
// attributes must match the ones it was set with or browsers keep it.
func (h *authHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(sessionCookie("", time.Now().Add(-time.Hour)))

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

// Cross-site cookies need Secure + SameSite=None in production, where the
// web client is served from another origin; local development keeps the
// stricter default.
func sessionCookie(token string, expires time.Time) *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
	}

	if utils.GetConfig("IS_PROD") == "true" {
		cookie.Secure = true
		cookie.SameSite = fiber.CookieSameSiteNoneMode
	} else {
		cookie.SameSite = fiber.CookieSameSiteStrictMode
	}
	return cookie
}
