package main

import (
	"log"

	"github.com/eventku/eventku-api/config"
	"github.com/eventku/eventku-api/internal/handler"
	"github.com/eventku/eventku-api/internal/middleware"
	"github.com/eventku/eventku-api/internal/repository"
	"github.com/eventku/eventku-api/internal/service"
	"github.com/eventku/eventku-api/pkg/database"
	"github.com/eventku/eventku-api/pkg/rabbitmq"
	"github.com/eventku/eventku-api/pkg/token"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		publisher = p
		defer publisher.Close()
	}

	eventRepo := repository.NewEventRepository(db)
	userRepo := repository.NewUserRepository(db)

	signer := token.NewSigner(cfg.SecretKey, cfg.TokenTTL)

	eventSvc := service.NewEventService(eventRepo, publisher)
	authSvc := service.NewAuthService(userRepo, signer)
	userSvc := service.NewUserService(userRepo)

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "eventku-api"})
	})

	auth := middleware.JWTAuth(signer)

	handler.NewEventHandler(eventSvc).RegisterRoutes(e.Group("/api/v1/events"), auth)
	handler.NewAuthHandler(authSvc).RegisterRoutes(e.Group("/api/v1/auth"))
	handler.NewUserHandler(userSvc, signer).RegisterRoutes(e.Group("/api/v1/users"), auth)

	log.Printf("Eventku API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
