package config

import (
	"fmt"
	"os"
)

var JWTKey []byte
var Port string
var RedisAddr string
var RabbitMQURL string

func LoadEnv() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		fmt.Println("JWT_SECRET is not set")
		os.Exit(1)
	}
	JWTKey = []byte(jwtSecret)

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	RedisAddr = os.Getenv("REDIS_ADDR")
	RabbitMQURL = os.Getenv("RABBITMQ_URL")
}

// DatabaseDSN builds the Postgres connection string from the DB_* variables.
func DatabaseDSN() string {
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		sslmode,
	)
}
