// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for SmartWaste.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, auth_jwt_secret, etc.
//   - Environment variables: SMARTWASTE_MONGO_URI, SMARTWASTE_AUTH_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --auth_jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "smartwaste", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	// Bearer-token verification. The token issuer is external; this service
	// only verifies.
	{Name: "auth_jwt_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "HMAC secret for bearer-token verification (must be strong in production)"},
	{Name: "auth_issuer", Default: "", Desc: "Expected token issuer claim (blank disables the check)"},

	// CORS for the browser clients.
	{Name: "cors_allowed_origins", Default: "http://localhost:3000", Desc: "Comma-separated origins allowed to call the API"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SMARTWASTE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AuthJWTSecret: appValues.String("auth_jwt_secret"),
		AuthIssuer:    appValues.String("auth_issuer"),
	}

	for _, origin := range strings.Split(appValues.String("cors_allowed_origins"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			appCfg.CORSAllowedOrigins = append(appCfg.CORSAllowedOrigins, origin)
		}
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// SmartWaste validates the MongoDB URI format to catch configuration errors
// early, and refuses to start in production with the development JWT secret.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if coreCfg.Env == "prod" && appCfg.AuthJWTSecret == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("auth_jwt_secret must be set in production")
	}

	return nil
}
