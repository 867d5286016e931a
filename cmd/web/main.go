package main

import (
	"kasambahay_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// Optional in production; env vars come from the platform there.
	_ = godotenv.Load()

	app.Run()
}
