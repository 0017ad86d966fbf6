package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"oviss-backend/config"
	"oviss-backend/routes"
	"oviss-backend/services"
	"oviss-backend/storage"
	"oviss-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		// Demo mode: tokens are valid until the next restart.
		os.Setenv("JWT_SECRET", utils.GenerateJWTSecret())
		log.Println("JWT_SECRET not set, generated a throwaway secret")
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}

	app := services.NewApp(store, cfg.PersistAppointments)
	app.Load(context.Background())

	if cfg.SMSEnabled() {
		app.Reminders.EnableSMS(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	}
	app.Reminders.StartScheduler()

	r := routes.SetupRouter(app)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func openStore(cfg config.Config) (storage.KV, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		return storage.NewRedis(cfg.RedisAddr), nil
	case config.BackendPostgres:
		return storage.NewGorm(cfg.DatabaseURL)
	default:
		return storage.NewMemory(), nil
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
