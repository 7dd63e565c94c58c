package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	StripeSecretKey string
	PostgresDSN     string
	RabbitMQURL     string
	RabbitMQQueue   string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		Addr:            getenv("ADDR", ":5000"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		PostgresDSN:     os.Getenv("POSTGRES_DSN"),
		RabbitMQURL:     os.Getenv("RABBITMQ_URL"),
		RabbitMQQueue:   getenv("RABBITMQ_QUEUE", "confirmed_orders"),
	}
	log.Printf("[config] ADDR=%s", cfg.Addr)
	if cfg.PostgresDSN == "" {
		log.Printf("[config] POSTGRES_DSN not set, using the in-memory store")
	}
	if cfg.StripeSecretKey == "" {
		log.Printf("[config] STRIPE_SECRET_KEY not set, payment intents will use the development path")
	}
	return cfg
}
