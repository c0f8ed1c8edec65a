package pkg

import (
	"context"
	"net/http"

	"NotificationHub/internal/auth"
	"NotificationHub/internal/config"
	"NotificationHub/internal/notification"
	"NotificationHub/pkg/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// HubModules wires the whole application: config, logging, Mongo, the user
// and notification stacks, and the HTTP server.
var HubModules = fx.Module("hub",
	fx.Provide(NewLogger),
	fx.Provide(config.NewAppConfig),
	fx.Provide(config.NewMongoDatabase),
	fx.Provide(auth.NewUserStore),
	fx.Provide(auth.NewUserService),
	fx.Provide(auth.NewUserHandler),
	fx.Provide(notification.NewSelector),
	fx.Provide(notification.NewStore),
	fx.Provide(notification.NewService),
	fx.Provide(notification.NewHandler),
	fx.Provide(NewEchoServer),
	fx.Invoke(config.EnsureUserIndexes),
	fx.Invoke(RegisterRoutes),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),
)

func NewLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func NewEchoServer(lc fx.Lifecycle, cfg *config.AppConfig, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	port := ":" + cfg.Port
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Server running", zap.String("addr", "http://localhost"+port))
			go func() {
				if err := e.Start(port); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start the server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(e *echo.Echo, cfg *config.AppConfig, userHandler *auth.UserHandler, notificationHandler *notification.Handler) {
	authenticated := middleware.JWT([]byte(cfg.JWTSecret))

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the Notification API!")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Route not found"})
	})

	users := e.Group("/api/v1/users")
	users.POST("", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.PUT("/replace", userHandler.Replace, authenticated)
	users.PATCH("/update", userHandler.Update, authenticated)
	users.GET("/profile", userHandler.Profile, authenticated)
	users.GET("/profile/:userId", userHandler.Profile, authenticated)
	users.DELETE("/delete/:userId", userHandler.Delete, authenticated)

	notifications := e.Group("/api/v1/notifications", authenticated)
	notifications.POST("/send", notificationHandler.Send)
	notifications.GET("", notificationHandler.List)
	notifications.GET("/:id", notificationHandler.Get)
	notifications.PUT("/:id", notificationHandler.Update)
	notifications.DELETE("/:id", notificationHandler.Delete)
}
