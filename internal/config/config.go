package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDatabase   string
	RabbitURI       string
	RabbitExchange  string
	JWTSecret       string
	TokenExpiryDays int
	AllowedOrigins  []string
}

var ServiceConfig *Config

func Init() {
	ServiceConfig = New()
}

func New() *Config {
	expiryStr := getEnv("TOKEN_EXPIRY_DAYS", "7")
	expiry, err := strconv.Atoi(expiryStr)
	if err != nil || expiry <= 0 {
		expiry = 7
	}

	origins := []string{getEnv("FE_ADDR", "http://localhost:3000")}

	return &Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDatabase:   getEnv("MONGO_DB", "quiz_platform"),
		RabbitURI:       getEnv("RABBITMQ_URI", ""),
		RabbitExchange:  getEnv("RABBITMQ_EXCHANGE", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenExpiryDays: expiry,
		AllowedOrigins:  origins,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("ENV %s not set, using fallback", key)
	return fallback
}
