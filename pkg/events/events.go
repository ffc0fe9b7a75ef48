// Package events publishes storefront lifecycle events. Publishing is
// strictly fire-and-forget: a failed publish is logged and dropped, never
// surfaced to the customer whose booking already committed.
package events

import "context"

const (
	TypeBookingConfirmed = "booking.confirmed"

	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
)

type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any)
	Close() error
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) {}

func (NopPublisher) Close() error { return nil }
