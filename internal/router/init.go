package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/wil-portal/internal/application"
	"github.com/oksasatya/wil-portal/internal/container"
	handlers "github.com/oksasatya/wil-portal/internal/interface/http"
	"github.com/oksasatya/wil-portal/internal/interface/middleware"
	"github.com/oksasatya/wil-portal/internal/router/modules"
)

// InitModules builds services and handlers from the container and registers
// every feature module. Call once during startup.
func InitModules(r *Registry, c *container.Container) {
	cfg := c.Config

	authSvc := application.NewAuthService(c.Users, c.JWT, c.Revocations, c.Logger, cfg.BcryptCost)
	programSvc := application.NewProgramService(c.Programs)
	statsSvc := application.NewStatsService(c.Stats)
	submissionSvc := application.NewSubmissionService(c.Publisher, c.Logger, cfg.AppName)

	r.Add(modules.NewSystemModule(handlers.NewSystemHandler(cfg.AppVersion)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, c.Logger), authSvc, c.Logger))
	r.Add(modules.NewProgramModule(handlers.NewProgramHandler(programSvc, statsSvc, c.Logger)))
	r.Add(modules.NewSubmissionModule(handlers.NewSubmissionHandler(submissionSvc, c.Logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	r.NoRoute(handlers.NewSystemHandler(cfg.AppVersion).NoRoute)
}

// NewEngine returns a Gin engine with global middleware and all modules
// mounted under the configured API prefix.
func NewEngine(c *container.Container) *gin.Engine {
	cfg := c.Config

	r := gin.New()
	if err := middleware.TrustProxies(r, cfg.TrustedProxyList()); err != nil {
		c.Logger.WithError(err).Warn("invalid TRUSTED_PROXIES; forwarding headers ignored")
		_ = middleware.TrustProxies(r, nil)
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(c.Logger))
	r.Use(middleware.RealIP())
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(c.Logger))
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.SecurityHeaders())

	reg := NewRegistry(r, cfg.APIPrefix)
	allow := middleware.AllowPaths("/health")
	if cfg.RateLimitBypassPrivate {
		allow = middleware.AnyOf(allow, middleware.AllowPrivateIP())
	}
	reg.Use(middleware.RateLimit(c.Redis, cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIP(), allow))
	InitModules(reg, c)
	reg.RegisterAll()
	return r
}
