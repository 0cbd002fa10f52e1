// Package constants holds shared environment and provider identifiers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// ChangeFeedProviderLocal dispatches change events in-process only.
	ChangeFeedProviderLocal = "local"
	// ChangeFeedProviderGoogle tees change events through Google Pub/Sub so
	// every instance's hub sees changes written by its peers.
	ChangeFeedProviderGoogle = "google"
)
