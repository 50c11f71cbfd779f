package routes

import (
	"savor-oasis-backend/internal/api/handlers"
	"savor-oasis-backend/internal/middleware"
	"savor-oasis-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	AuthHandler     handlers.AuthHandler
	FoodHandler     handlers.FoodHandler
	PurchaseHandler handlers.PurchaseHandler
	GalleryHandler  handlers.GalleryHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

// Setup registers the full route surface. Paths are kept flat (no /api/v1
// prefix) because the deployed web client addresses them directly.
func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Foods()
	c.Purchases()
	c.Gallery()
	c.GuestRoute()
}

func (c *Config) Auth() {
	c.App.Post("/jwt", c.AuthHandler.CreateToken)
	c.App.Get("/logout", c.AuthHandler.Logout)
}

func (c *Config) Foods() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/allfoods", c.FoodHandler.GetFoods)
	c.App.Get("/allfoods/:email", auth, c.FoodHandler.GetFoodsBySeller)
	c.App.Get("/food-details/:id", auth, c.FoodHandler.GetFoodDetails)
	c.App.Post("/allfoods", c.FoodHandler.AddFood)
	c.App.Put("/update-foods/:id", c.FoodHandler.UpdateFood)
	c.App.Patch("/purchase-changes/:id", c.FoodHandler.ApplyPurchaseChanges)
	c.App.Patch("/delete-changes/:id", c.FoodHandler.RevertPurchaseChanges)
	c.App.Delete("/delete-food/:id", c.FoodHandler.DeleteFood)
}

func (c *Config) Purchases() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/purchases/:email", auth, c.PurchaseHandler.GetPurchasesByBuyer)
	c.App.Post("/purchases", c.PurchaseHandler.CreatePurchase)
	c.App.Delete("/delete-purchases/:id", c.PurchaseHandler.DeletePurchase)
	c.App.Delete("/delete-purchases-food/:id", c.PurchaseHandler.DeletePurchasesByFood)
}

func (c *Config) Gallery() {
	c.App.Get("/gallery", c.GalleryHandler.GetGallery)
	c.App.Post("/gallery", c.GalleryHandler.AddGalleryPhoto)
	c.App.Post("/upload-image", c.Middleware.AuthMiddleware(c.JWTService), c.GalleryHandler.UploadImage)
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from Savor Oasis Server ....")
	})
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
