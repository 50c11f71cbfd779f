package config

import (
	"os"

	"savor-oasis-backend/internal/api/handlers"
	"savor-oasis-backend/internal/api/routes"
	"savor-oasis-backend/internal/middleware"
	"savor-oasis-backend/internal/utils"
	"savor-oasis-backend/internal/utils/storage"
	"savor-oasis-backend/pkg/food"
	"savor-oasis-backend/pkg/gallery"
	"savor-oasis-backend/pkg/jwt"
	"savor-oasis-backend/pkg/payment"
	"savor-oasis-backend/pkg/purchase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	foodRepository := food.NewFoodRepository(db)
	purchaseRepository := purchase.NewPurchaseRepository(db)
	galleryRepository := gallery.NewGalleryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	paymentService := payment.NewPaymentService()
	foodService := food.NewFoodService(foodRepository, purchaseRepository, s3)
	purchaseService := purchase.NewPurchaseService(purchaseRepository, paymentService)
	galleryService := gallery.NewGalleryService(galleryRepository, s3)

	// Handler
	authHandler := handlers.NewAuthHandler(jwtService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, validator)
	galleryHandler := handlers.NewGalleryHandler(galleryService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		AuthHandler:     authHandler,
		FoodHandler:     foodHandler,
		PurchaseHandler: purchaseHandler,
		GalleryHandler:  galleryHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
