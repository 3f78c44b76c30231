// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted by the pubsub configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Payment method tags recorded on orders. Operators distinguish the
// trusted gateway path from the demo path by this tag alone.
const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodDemo     = "demo"
)
