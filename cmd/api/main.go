package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"urbanmobility/internal/config"
	"urbanmobility/internal/database"
	"urbanmobility/internal/middleware"
	"urbanmobility/internal/modules/account"
	"urbanmobility/internal/modules/auth"
	"urbanmobility/internal/modules/booking"
	"urbanmobility/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	accountRepo := repository.NewAccountRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	accountService := account.NewService(accountRepo)
	accountHandler := account.NewHandler(accountService)

	bookingService := booking.NewService(bookingRepo)
	bookingHandler := booking.NewHandler(bookingService)

	authService := auth.NewService(accountService)
	authHandler := auth.NewHandler(authService)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORS(cfg.CORSOrigins),
	)

	api := r.Group("/api")
	{
		accountHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		authHandler.RegisterRoutes(api)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
