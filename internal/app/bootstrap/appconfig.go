// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// env); AppConfig carries everything specific to SmartWaste. Values come
// from environment variables, configuration files, or command-line flags,
// loaded in LoadConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g. mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer-token verification
	AuthJWTSecret string // HMAC secret shared with the identity provider
	AuthIssuer    string // Expected "iss" claim; blank disables the check

	// CORS
	CORSAllowedOrigins []string // Origins allowed to call the API
}
