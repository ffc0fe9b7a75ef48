package config

import "time"

const (
	// MONGO_URI is optional: when unset the storefront falls back to the
	// in-memory key-value store, mirroring the client-local storage of the
	// original single-user flows.
	DefaultMongoDatabaseName = "tourvis"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultBookingEventTopic = "booking.confirmed"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultSessionTTL  = 30 * time.Minute
	DefaultSearchDelay = 1 * time.Second

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Entry-parameter fallbacks used when a booking session is opened
	// without explicit tour context.
	DefaultTourSlug  = "surfing-at-sundak-beach-experience"
	DefaultTourTime  = "09:00 AM"
	DefaultQuantity  = 1
	DefaultUnitPrice = 250
)
