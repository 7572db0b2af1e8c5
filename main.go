package main

import (
	"context"
	"net/http"
	"os"

	"notesvc/config/database"
	"notesvc/internal/migrate"
	"notesvc/pkg/logger"
	"notesvc/router"
	"notesvc/socket"

	"github.com/joho/godotenv"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	db := database.Connect()
	defer db.Close()

	if err := migrate.Up(context.Background(), db); err != nil {
		logger.Sugar.Fatalf("Failed to apply migrations: %v", err)
	}

	hub := socket.NewHub()
	go hub.Run()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Sugar.Infof("Backend listening on :%s", port)
	if err := http.ListenAndServe(":"+port, router.Setup(db, hub)); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}
