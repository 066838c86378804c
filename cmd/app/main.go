package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"fulfillment/cmd"
	_ "fulfillment/docs"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/menurepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/storerepo"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Fulfillment Service
// @version 1.0.0
// @description Cart, delivery quoting and order lifecycle API for the food ordering platform.
// @BasePath /api/v1
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}
	defer app.Shutdown()

	jobManager := jobs.NewJobManager(app.CreateRefreshEtasCommandHandler(), app.Logger())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		RoutingAPIKey:  goDotEnvVariable("ROUTING_API_KEY"),
		RoutingBaseURL: goDotEnvVariable("ROUTING_BASE_URL"),
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
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&storerepo.StoreDTO{},
		&menurepo.ItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	commandHandlers := httpin.Commands{
		AddCartItem:          app.CreateAddCartItemCommandHandler(),
		UpdateCartLine:       app.CreateUpdateCartLineCommandHandler(),
		SetLineQuantity:      app.CreateSetLineQuantityCommandHandler(),
		RemoveCartLine:       app.CreateRemoveCartLineCommandHandler(),
		ClearCart:            app.CreateClearCartCommandHandler(),
		PlaceOrder:           app.CreatePlaceOrderCommandHandler(),
		AcceptOrder:          app.CreateAcceptOrderCommandHandler(),
		RejectOrder:          app.CreateRejectOrderCommandHandler(),
		CancelOrder:          app.CreateCancelOrderCommandHandler(),
		StartPreparing:       app.CreateStartPreparingCommandHandler(),
		MarkReady:            app.CreateMarkReadyCommandHandler(),
		StartDelivering:      app.CreateStartDeliveringCommandHandler(),
		CompleteOrder:        app.CreateCompleteOrderCommandHandler(),
		UpdateDriverLocation: app.CreateUpdateDriverLocationCommandHandler(),
	}
	queryHandlers := httpin.Queries{
		GetCart:          app.CreateGetCartQueryHandler(),
		GetDeliveryQuote: app.CreateGetDeliveryQuoteQueryHandler(),
		GetOrder:         app.CreateGetOrderQueryHandler(),
		GetActiveOrders:  app.CreateGetActiveOrdersQueryHandler(),
	}

	servers.RegisterHandlersWithBaseURL(e, httpin.NewServer(commandHandlers, queryHandlers), "/api/v1")

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
