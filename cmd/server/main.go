package main

import (
	"log"

	"buildmart-be/internal/config"
	"buildmart-be/internal/db"
	"buildmart-be/internal/httpapi"
	"buildmart-be/internal/importer"
	"buildmart-be/internal/logger"
	"buildmart-be/internal/metrics"
	"buildmart-be/internal/notification"
	"buildmart-be/internal/order"
	"buildmart-be/internal/product"
	"buildmart-be/internal/rfq"
	"buildmart-be/internal/shipment"
	"buildmart-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	// Notification pipeline starts first so the shipment tracker has a
	// live queue to hand events to.
	gateway := notification.NewMailerGateway(cfg.MailerAPIKey, cfg.MailerBaseURL)
	dispatcher := notification.NewDispatcher(notification.NewRepository(database), gateway, 0)
	dispatcher.Start()
	defer dispatcher.Close()

	userSvc := user.NewService(user.NewRepository(database))
	orderSvc := order.NewService(order.NewRepository(database))
	shipmentSvc := shipment.NewService(shipment.NewRepository(database), dispatcher)

	productRepo := product.NewRepository(database)
	importSvc := importer.NewService(importer.NewRepository(database), productRepo)

	rfqSvc := rfq.NewService(rfq.NewRepository(database))
	statsRepo := metrics.NewRepository(database)

	router := httpapi.NewRouter(httpapi.Services{
		Users:     userSvc,
		Orders:    orderSvc,
		Shipments: shipmentSvc,
		Imports:   importSvc,
		RFQs:      rfqSvc,
		Stats:     statsRepo,
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 API server running at http://localhost:%s/", port)
	log.Fatal(router.Run(":" + port))
}
