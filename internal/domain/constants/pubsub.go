package constants

// Pub/Sub provider names accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Account event types.
const (
	EventAccountRegistered = "account.registered"
	EventAccountDeleted    = "account.deleted"
)
