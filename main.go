// cosmos-crm/main.go

package main

import (
	"log/slog"
	"os"

	"cosmos-crm/config"
	"cosmos-crm/internal/routes"
)

func main() {
	db, err := config.ConnectDB()
	if err != nil {
		slog.Error("Failed to connect to the database", "error", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5555"
	}

	router := routes.NewRouter(db)
	slog.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
