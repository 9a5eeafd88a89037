package httpserver

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	intakeHTTP "task-intake-service/internal/intake/delivery/http"
	intakeUC "task-intake-service/internal/intake/usecase"
	"task-intake-service/internal/model"
	pkgErrors "task-intake-service/pkg/errors"
	"task-intake-service/pkg/response"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.Use(
		srv.mw.Recovery(),
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.CORS(),
		srv.mw.RateLimit(),
	)

	ctx := context.Background()
	srv.l.Infof(ctx, "CORS allowed origins: %s", strings.Join(srv.mw.AllowedOrigins(), ", "))
	if model.IsProduction(srv.environment) && srv.mw.AllowsAnyOrigin() {
		srv.l.Warnf(ctx, "CORS allows any origin in %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootCheck)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.ErrNotFound)
	})
	srv.gin.NoMethod(func(c *gin.Context) {
		response.Error(c, pkgErrors.ErrMethodNotAllowed)
	})
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// Task intake
	uc := intakeUC.New(srv.l)
	h := intakeHTTP.New(srv.l, uc)
	intakeHTTP.RegisterRoutes(srv.gin, h)
	srv.l.Infof(ctx, "Intake route registered at POST /parse_task")

	return nil
}
