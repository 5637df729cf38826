package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"taxidispatch/cmd"
	_ "taxidispatch/docs"
	httpadapter "taxidispatch/internal/adapters/in/http"
	"taxidispatch/internal/adapters/out/postgres/accountrepo"
	"taxidispatch/internal/adapters/out/postgres/georepo"
	"taxidispatch/internal/adapters/out/postgres/orderrepo"
	"taxidispatch/internal/adapters/out/postgres/routerepo"
	"taxidispatch/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		AdminIDs:   goDotEnvVariable("ADMIN_IDS"),
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
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&georepo.RegionDTO{},
		&georepo.DistrictDTO{},
		&routerepo.RouteDTO{},
		&routerepo.ChannelDTO{},
		&orderrepo.OrderDTO{},
		&accountrepo.DriverAccountDTO{},
		&accountrepo.AllowedDriverDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	handlers := httpadapter.Handlers{
		CreateOrder:        app.CreateCreateOrderCommandHandler(),
		AcceptOrder:        app.CreateAcceptOrderCommandHandler(),
		ReturnOrder:        app.CreateReturnOrderCommandHandler(),
		CompleteOrder:      app.CreateCompleteOrderCommandHandler(),
		CancelOrder:        app.CreateCancelOrderCommandHandler(),
		AddRegion:          app.CreateAddRegionCommandHandler(),
		DeleteRegion:       app.CreateDeleteRegionCommandHandler(),
		AddDistrict:        app.CreateAddDistrictCommandHandler(),
		DeleteDistrict:     app.CreateDeleteDistrictCommandHandler(),
		AddRoute:           app.CreateAddRouteCommandHandler(),
		DeleteRoute:        app.CreateDeleteRouteCommandHandler(),
		AttachChannel:      app.CreateAttachChannelCommandHandler(),
		DetachChannel:      app.CreateDetachChannelCommandHandler(),
		AddDriver:          app.CreateAddDriverCommandHandler(),
		RemoveDriver:       app.CreateRemoveDriverCommandHandler(),
		AdjustBalance:      app.CreateAdjustBalanceCommandHandler(),
		ExtendSubscription: app.CreateExtendSubscriptionCommandHandler(),
		ListRegions:        app.CreateListRegionsQueryHandler(),
		ListDistricts:      app.CreateListDistrictsQueryHandler(),
		ListRoutes:         app.CreateListRoutesQueryHandler(),
		ListOrders:         app.CreateListOrdersQueryHandler(),
		GetDriverAccount:   app.CreateGetDriverAccountQueryHandler(),
	}

	server := httpadapter.NewServer(handlers, splitAdminIDs(configs.AdminIDs))

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func splitAdminIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
