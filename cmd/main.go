package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"travel-booking-service/config"
	"travel-booking-service/internal/api"
	"travel-booking-service/internal/booking"
	brokerPkg "travel-booking-service/internal/broker"
	"travel-booking-service/internal/db"
	"travel-booking-service/internal/db/repos"
	"travel-booking-service/internal/idempotency"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	config.LoadEnv()

	conn := db.NewDB(config.DatabaseDSN())

	bookingRepo := repos.NewBookingRepository(conn)
	catalogRepo := repos.NewCatalogRepository(conn)

	var events booking.Publisher
	var eventBroker *brokerPkg.Broker
	if config.RabbitMQURL != "" {
		b, err := brokerPkg.NewBroker(config.RabbitMQURL, "travel", "topic")
		if err != nil {
			log.Printf("Warning: Failed to create broker, events disabled: %v", err)
		} else {
			events = b
			eventBroker = b
		}
	}

	var guard idempotency.Guard
	var redisClient *redis.Client
	if config.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis ping failed (%s), using in-memory idempotency: %v", config.RedisAddr, err)
			guard = idempotency.NewMemoryGuard()
		} else {
			guard = idempotency.NewRedisGuard(redisClient)
			log.Println("Booking idempotency: Redis (TTL 24h)")
		}
	} else {
		guard = idempotency.NewMemoryGuard()
		log.Println("Booking idempotency: in-memory (set REDIS_ADDR for Redis)")
	}

	engine := booking.NewEngine(bookingRepo, events)
	handler := api.NewHandler(engine, catalogRepo, guard)

	router := gin.Default()
	api.SetupRoutes(router, handler)

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		dbCheck := "up"
		if err := conn.PingContext(c.Request.Context()); err != nil {
			status = "degraded"
			dbCheck = "down"
		}
		redisCheck := "n/a"
		if redisClient != nil {
			redisCheck = "up"
			if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
				status = "degraded"
				redisCheck = "down"
			}
		}
		brokerCheck := "n/a"
		if eventBroker != nil {
			brokerCheck = "up"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"checks": gin.H{"database": dbCheck, "redis": redisCheck, "broker": brokerCheck},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if eventBroker != nil {
			if err := eventBroker.Close(); err != nil {
				log.Printf("Error closing broker: %v", err)
			}
		}
		if err := conn.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
		os.Exit(0)
	}()

	if err := router.Run(":" + config.Port); err != nil {
		log.Fatal(err)
	}
}
