// Package constants holds shared string constants used across layers.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// DefaultCurrency is used when a product does not carry a currency code.
const DefaultCurrency = "USD"

// Event names carried to the real-time channel.
const (
	EventNewOrder      = "new_order"
	EventOrderApproved = "order_approved"
	EventOrderDeclined = "order_declined"
)
