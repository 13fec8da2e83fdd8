package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/avinash6982/TripMakerWeb-BE/internal/server"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/config"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment as-is")
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
