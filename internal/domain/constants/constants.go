package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers
const (
	IdentityProviderLocal    = "local"
	IdentityProviderSupabase = "supabase"
)

// Record event actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Record event entity names
const (
	EntityCylinder  = "cylinder"
	EntityElement   = "element"
	EntitySample    = "sample"
	EntityFlameTime = "flame_time"
)
