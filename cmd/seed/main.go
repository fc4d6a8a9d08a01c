package main

import (
	"context"
	"log"

	"urbanmobility/internal/database"
	"urbanmobility/internal/domain"
	"urbanmobility/internal/repository"
)

func main() {
	db, err := database.Connect("mobility.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (bookings first; no FK, but keep order stable)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM accounts")

	ctx := context.Background()
	accountRepo := repository.NewAccountRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	log.Println("Creating accounts...")
	accounts := []domain.Account{
		{
			Username:       "Tom",
			Role:           "User",
			Phone:          "0722946563",
			PaymentInfo:    "3334 5566 3432 9090",
			PaymentHistory: 4,
			ActiveBookings: "3",
			IsPaymentSet:   true,
		},
		{
			Username:       "MetroLines",
			Role:           "Supplier",
			Phone:          "0733557799",
			PaymentInfo:    "1234 5678 9012 3456",
			PaymentHistory: 12,
			ActiveBookings: "0",
			IsPaymentSet:   true,
		},
		{
			Username:       "Anna",
			Role:           "User",
			Phone:          "0711223344",
			PaymentInfo:    "9876543210123456",
			PaymentHistory: 0,
			ActiveBookings: "1",
			IsPaymentSet:   false,
		},
	}
	for i := range accounts {
		if err := accountRepo.Create(ctx, &accounts[i]); err != nil {
			log.Fatal("seed account failed:", err)
		}
	}

	log.Println("Creating bookings...")
	bookings := []domain.Booking{
		{RouteID: 1, Username: "Tom"},
		{RouteID: 7, Username: "Tom"},
		{RouteID: 3, Username: "Anna"},
	}
	for i := range bookings {
		if err := bookingRepo.Create(ctx, &bookings[i]); err != nil {
			log.Fatal("seed booking failed:", err)
		}
	}

	log.Printf("Seed complete: %d accounts, %d bookings", len(accounts), len(bookings))
}
