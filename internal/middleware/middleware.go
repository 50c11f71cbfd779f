package middleware

import (
	"savor-oasis-backend/domain"
	"savor-oasis-backend/internal/api/presenters"
	"savor-oasis-backend/internal/utils"
	"savor-oasis-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		CORSMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	origins := utils.GetConfig("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// AuthMiddleware reads the session cookie and stops the request on any
// verification failure; the next handler only ever runs with a valid
// identity in the request locals.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("token")
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorizedAccess, domain.ErrTokenNotFound)
		}

		email, name, err := jwtService.GetEmailByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorizedAccess, err)
		}

		c.Locals("email", email)
		c.Locals("name", name)
		return c.Next()
	}
}
