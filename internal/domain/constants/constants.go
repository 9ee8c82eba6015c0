package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Registration modes for factory-fresh devices.
const (
	// RegistrationModeOpen accepts any well-formed unseen identifier on first contact.
	RegistrationModeOpen = "open"
	// RegistrationModeAllowlist only accepts identifiers provisioned out of band.
	RegistrationModeAllowlist = "allowlist"
)

// Header carrying the per-binding device key on device routes.
const HeaderDeviceKey = "X-Device-Key"
