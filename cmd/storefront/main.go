package main

import (
	bookinghandler "tourvis/internal/booking/handler"
	bookingservice "tourvis/internal/booking/service"
	"tourvis/internal/booking/session"
	bookingvalidator "tourvis/internal/booking/validator"
	cancellationhandler "tourvis/internal/cancellation/handler"
	cancellationservice "tourvis/internal/cancellation/service"
	cancellationvalidator "tourvis/internal/cancellation/validator"
	"tourvis/internal/health"
	inquiryhandler "tourvis/internal/inquiry/handler"
	inquiryservice "tourvis/internal/inquiry/service"
	inquiryvalidator "tourvis/internal/inquiry/validator"
	"tourvis/internal/tours"
	tourshandler "tourvis/internal/tours/handler"
	"tourvis/pkg/app"
	"tourvis/pkg/config"
	"tourvis/pkg/events"
	"tourvis/pkg/kvstore"
)

const ServiceName = "storefront"

func main() {
	cfg := config.Load(ServiceName)

	store := initStore(cfg)
	publisher := initPublisher(cfg)

	stepValidator := bookingvalidator.NewStepValidator(cfg.Log)
	sessions := session.NewManager(stepValidator, cfg.SessionTTL, cfg.Log)

	bookingSvc := bookingservice.NewBookingService(store, publisher, cfg.SearchDelay, cfg.Log)
	inquirySvc := inquiryservice.NewInquiryService(store, inquiryvalidator.NewInquiryValidator(cfg.Log), cfg.SearchDelay, cfg.Log)
	cancellationSvc := cancellationservice.NewCancellationService(store, cancellationvalidator.NewCancellationValidator(cfg.Log), cfg.Log)
	catalog := tours.NewCatalog()

	application := app.NewApplication(cfg)
	application.SetApp(
		health.NewHealthHandler(store, cfg.Log),
		bookinghandler.NewBookingHandler(sessions, bookingSvc, cfg.Log),
		inquiryhandler.NewInquiryHandler(inquirySvc, cfg.Log),
		cancellationhandler.NewCancellationHandler(cancellationSvc, cfg.Log),
		tourshandler.NewToursHandler(catalog, cfg.Log),
	)

	application.OnShutdown(sessions.Stop)
	application.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})

	application.Run()
}

// initStore picks MongoDB when a URI is configured and the in-memory store
// otherwise, so the storefront runs standalone in development.
func initStore(cfg *config.Config) kvstore.Store {
	if cfg.MongoURI == "" {
		cfg.Log.Warn("MONGO_URI not set, using in-memory storage; records do not survive restarts")
		return kvstore.NewMemoryStore()
	}

	client := kvstore.Connect(cfg.Log, cfg.MongoURI, cfg.MongoDatabaseName, cfg.MongoConnTimeout)
	return kvstore.NewMongoStore(client, cfg.MongoDatabaseName, cfg.MongoConnTimeout)
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("No Kafka brokers configured, booking events disabled")
		return events.NopPublisher{}
	}
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.BookingEventTopic, ServiceName, cfg.Log)
}
