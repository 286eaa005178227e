package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bitebox/cmd"
	_ "bitebox/docs"
	httpadapter "bitebox/internal/adapters/in/http"
	"bitebox/internal/generated/servers"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer app.Shutdown()

	if err := app.MigrateDatabase(); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateUser:       app.CreateCreateUserCommandHandler(),
		UpdateUser:       app.CreateUpdateUserCommandHandler(),
		DeleteUser:       app.CreateDeleteUserCommandHandler(),
		CreateRestaurant: app.CreateCreateRestaurantCommandHandler(),
		UpdateRestaurant: app.CreateUpdateRestaurantCommandHandler(),
		DeleteRestaurant: app.CreateDeleteRestaurantCommandHandler(),
		CreateProduct:    app.CreateCreateProductCommandHandler(),
		UpdateProduct:    app.CreateUpdateProductCommandHandler(),
		DeleteProduct:    app.CreateDeleteProductCommandHandler(),
		CreateOrder:      app.CreateCreateOrderCommandHandler(),
		UpdateOrder:      app.CreateUpdateOrderCommandHandler(),
		SendOrder:        app.CreateSendOrderCommandHandler(),
		AcceptOrder:      app.CreateAcceptOrderCommandHandler(),
		AdvanceOrder:     app.CreateAdvanceOrderCommandHandler(),
		DeleteOrder:      app.CreateDeleteOrderCommandHandler(),

		GetUserByID:                 app.CreateGetUserByIDQueryHandler(),
		GetOrderByID:                app.CreateGetOrderByIDQueryHandler(),
		GetOrdersByFilters:          app.CreateGetOrdersByFiltersQueryHandler(),
		GetNotAcceptedOrders:        app.CreateGetNotAcceptedOrdersQueryHandler(),
		GetRestaurants:              app.CreateGetRestaurantsQueryHandler(),
		GetProducts:                 app.CreateGetProductsQueryHandler(),
		GetRestaurantMenu:           app.CreateGetRestaurantMenuQueryHandler(),
		GetRestaurantOngoingOrders:  app.CreateGetRestaurantOngoingOrdersQueryHandler(),
		GetRestaurantFinishedOrders: app.CreateGetRestaurantFinishedOrdersQueryHandler(),
	})

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
