// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	cleanersfeature "github.com/smartwastehq/smartwaste/internal/app/features/cleaners"
	healthfeature "github.com/smartwastehq/smartwaste/internal/app/features/health"
	profilefeature "github.com/smartwastehq/smartwaste/internal/app/features/profile"
	reportsfeature "github.com/smartwastehq/smartwaste/internal/app/features/reports"
	statsfeature "github.com/smartwastehq/smartwaste/internal/app/features/stats"
	userstore "github.com/smartwastehq/smartwaste/internal/app/store/users"
	"github.com/smartwastehq/smartwaste/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// SmartWaste applies CORS and the identity-resolving middleware globally,
// then mounts the API feature routers. Identity resolution is silent: an
// absent or invalid bearer token leaves the request anonymous, and each
// feature decides whether anonymous callers are acceptable.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier := auth.NewJWTVerifier(appCfg.AuthJWTSecret, appCfg.AuthIssuer)
	profiles := userstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Global identity middleware: resolves the bearer token into an Identity
	// in context, or leaves the request anonymous.
	r.Use(auth.ResolveIdentity(verifier, profiles, logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/api/health", healthfeature.Routes(healthHandler))

	// Reports: role-scoped list plus create/update/delete/assign
	reportsHandler := reportsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/reports", reportsfeature.Routes(reportsHandler))

	// Admin cleaner directory
	cleanersHandler := cleanersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/cleaners", cleanersfeature.Routes(cleanersHandler))

	// Role-scoped dashboard aggregates
	statsHandler := statsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/stats", statsfeature.Routes(statsHandler))

	// Identity echo
	profileHandler := profilefeature.NewHandler()
	r.Mount("/api/user", profilefeature.Routes(profileHandler))

	return r, nil
}
