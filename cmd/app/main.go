package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"savor-oasis-backend/cmd/config"
	migration "savor-oasis-backend/cmd/database/migrate"
	"savor-oasis-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "9000"
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		if err := app.Shutdown(); err != nil {
			log.Printf("error during shutdown: %v", err)
		}
	}()

	listenErr := app.Listen(":" + port)

	// connection pool is closed after the listener drains, on clean
	// shutdown and on listen failure alike
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	if listenErr != nil {
		log.Fatalf("server stopped: %v", listenErr)
	}
}
