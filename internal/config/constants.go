package config

import "time"

// Environment variable names
const (
	EnvPort           = "PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvItemDBPaths    = "ITEM_DB_PATHS"
	EnvAPIKey         = "API_KEY"
	EnvTrustedProxies = "TRUSTED_PROXIES"
	EnvAliasCacheSize = "ALIAS_CACHE_SIZE"
	EnvAliasCacheTTL  = "ALIAS_CACHE_TTL"
)

// Default values
const (
	DefaultPort           = "8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "item-registry"
	DefaultVersion        = "dev"
	DefaultItemDBPath     = "db/item_db.txt"
	DefaultAliasCacheSize = 256
	DefaultAliasCacheTTL  = 5 * time.Minute
)
