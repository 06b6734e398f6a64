package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "fitpick/internal/http/handlers"
	httpMW "fitpick/internal/http/middleware"
	"fitpick/internal/logger"
)

type RouterConfig struct {
	FitHandler    *httpH.FitHandler
	HealthHandler *httpH.HealthHandler
	Log           *logger.Logger

	// ServiceName enables otelgin spans when non-empty.
	ServiceName string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	// Fit names may contain "/" ("Force / shrink"); route on the escaped path.
	r.UseRawPath = true
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	if cfg.FitHandler != nil {
		api.GET("/reference", cfg.FitHandler.Reference)
		api.GET("/fits", cfg.FitHandler.ListFits)
		api.GET("/fits/:name", cfg.FitHandler.GetFit)
		api.POST("/fit", cfg.FitHandler.ComputeFit)
		api.GET("/limits", cfg.FitHandler.ComputeLimits)
		api.GET("/sweep", cfg.FitHandler.Sweep)
	}

	return r
}
