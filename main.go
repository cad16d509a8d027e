package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bekosher/bekosher-api/cache"
	"github.com/bekosher/bekosher-api/controllers"
	"github.com/bekosher/bekosher-api/events"
	"github.com/bekosher/bekosher-api/initializers"
	"github.com/bekosher/bekosher-api/middlewares"
	"github.com/bekosher/bekosher-api/repositories"
	"github.com/bekosher/bekosher-api/routes"
	"github.com/bekosher/bekosher-api/services"
	"github.com/bekosher/bekosher-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config, err := initializers.LoadConfig()
	if err != nil {
		return err
	}
	logger := initializers.SetupLogger(config.LogLevel)
	decimal.MarshalJSONWithoutQuotes = true

	db, err := initializers.ConnectToDB(config)
	if err != nil {
		return err
	}
	if err := initializers.SyncDatabase(db); err != nil {
		return err
	}
	if err := initializers.ConfigureBinding(); err != nil {
		return err
	}

	orderRepository := repositories.NewOrderRepository(db)
	establishmentRepository := repositories.NewEstablishmentRepository(db)
	menuRepository := repositories.NewMenuRepository(db)
	hoursRepository := repositories.NewHoursRepository(db)

	var menuCache services.MenuCache
	redisClient, err := initializers.ConnectToRedis(ctx, config)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		menuCache = cache.NewMenuCache(redisClient, config.MenuCacheTTL)
	} else {
		logger.Info("menu cache disabled")
	}

	var publisher services.OrderEventPublisher
	if writer := initializers.NewKafkaWriter(config); writer != nil {
		defer writer.Close()
		publisher = events.NewKafkaPublisher(writer)
	} else {
		logger.Info("order events disabled")
	}

	availability := services.NewAvailabilityEvaluator(hoursRepository, config.Location)
	orderService := services.NewOrderService(orderRepository, establishmentRepository, menuRepository, publisher)
	establishmentService := services.NewEstablishmentService(establishmentRepository, menuRepository, menuCache, availability, utils.NewQRCodeGenerator(), config.PublicBaseURL)
	hoursService := services.NewHoursService(hoursRepository)
	menuService := services.NewMenuService(menuRepository, menuCache)
	adminService := services.NewAdminService(establishmentRepository)

	gin.SetMode(config.GinMode)
	server := gin.New()
	server.Use(gin.Recovery(), middlewares.RequestLogger(logger))
	server.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := middlewares.RequireAuth(config.JWTSecret)
	routes.DefaultRoutes(server)
	routes.PublicRoutes(server,
		controllers.NewEstablishmentController(establishmentService),
		controllers.NewAddressController(utils.NewCEPClient(config.ViaCEPBaseURL)),
	)
	routes.OrderRoutes(server, controllers.NewOrderController(orderService), auth)
	routes.EstablishmentRoutes(server,
		controllers.NewProfileController(establishmentService),
		controllers.NewHoursController(hoursService),
		controllers.NewProductController(menuService),
		auth,
	)
	routes.AdminRoutes(server, controllers.NewAdminController(adminService), auth)

	httpServer := &http.Server{
		Addr:              config.Addr(),
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
