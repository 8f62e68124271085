package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/wheelhouse/site-api/docs"
	"github.com/wheelhouse/site-api/internal/action"
	"github.com/wheelhouse/site-api/internal/api/handler"
	"github.com/wheelhouse/site-api/internal/api/middleware"
	"github.com/wheelhouse/site-api/internal/core/domain"
	"github.com/wheelhouse/site-api/internal/core/service"
	dbmongo "github.com/wheelhouse/site-api/internal/infrastructure/db/mongo"
	dbredis "github.com/wheelhouse/site-api/internal/infrastructure/db/redis"
	"github.com/wheelhouse/site-api/internal/pkg/config"
	"github.com/wheelhouse/site-api/internal/session"
	"github.com/wheelhouse/site-api/internal/site"
)

// NewRouter builds the Echo instance with all routes registered. rdb may be
// nil, which disables the login lockout and the Redis readiness check.
func NewRouter(cfg *config.Config, conn *dbmongo.Lazy, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	resolver := site.NewResolver(site.Config{
		AdminHosts:    cfg.AdminHosts,
		CustomerHosts: cfg.CustomerHosts,
		DevMode:       cfg.IsDev(),
		DevHost:       cfg.DevHost,
	})

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("siteapi"))
	e.Use(middleware.SiteVariant(resolver))

	// --- Dependencies ---
	sessions := session.NewManager(session.Config{
		AdminSecret:    cfg.AdminJWTSecret,
		SiteLockSecret: cfg.SiteLockSecret,
	})

	users := dbmongo.NewUserRepository(conn)
	customers := dbmongo.NewCustomerRepository(conn)
	auditRepo := dbmongo.NewAuditRepository(conn)

	var lockout service.LoginLockout
	if rdb != nil {
		lockout = dbredis.NewLoginLockout(rdb)
	}

	authService := service.NewAuthService(users, sessions, resolver, lockout, cfg.LoginDelay, log)
	audit := service.NewAuditRecorder(auditRepo, resolver, log)
	userService := service.NewUserService(users, authService, audit, log)
	customerService := service.NewCustomerService(customers, userService, log)
	siteLock := service.NewSiteLockService(cfg.SiteLockPasscode, sessions)

	adminDispatcher := action.NewDispatcher(action.NewAdminRegistry(action.AdminDeps{
		Auth:      authService,
		Users:     userService,
		Customers: customerService,
		Audit:     audit,
	}), conn, authService, log)
	siteDispatcher := action.NewDispatcher(action.NewSiteRegistry(action.SiteDeps{
		SiteLock: siteLock,
	}), nil, nil, log)

	// --- Action endpoints (one catch-all per site variant) ---
	adminActions := handler.NewActionHandler(adminDispatcher, domain.SiteTypeAdmin)
	siteActions := handler.NewActionHandler(siteDispatcher, domain.SiteTypeCustomer)

	e.POST("/api/admin/*", adminActions.Handle)
	e.POST("/api/site/*", siteActions.Handle)

	// --- Site lock + image passthrough ---
	siteLockHandler := handler.NewSiteLockHandler(siteLock)
	e.GET("/api/site-lock", siteLockHandler.Status)

	imageHandler := handler.NewImageHandler(map[string]string{
		"logo":       cfg.LogoURL,
		"logo-light": cfg.LogoLightURL,
	})
	e.GET("/api/img/:img", imageHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(conn, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability + docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
